package analyses

// AnalyzeRequest is everything a caller can supply for one analysis.
// Only ResumeText is required; everything else narrows or overrides
// what the extractor would derive on its own.
type AnalyzeRequest struct {
	ResumeText      string   `json:"resumeText"`
	TargetRole      string   `json:"targetRole"`
	ExperienceLevel string   `json:"experienceLevel"`
	Qualification   string   `json:"qualification"`
	ExperienceYears *int     `json:"experienceYears"`
	DetectedSkills  []string `json:"detectedSkills"`
}
