package evaluator

import (
	"fmt"
	"strings"
)

// ChecklistItem is one check in the interactive review checklist.
type ChecklistItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
	Icon    string `json:"icon"`
}

// Checklist groups essential and recommended checks with summary tallies.
type Checklist struct {
	Essential        []ChecklistItem `json:"essential"`
	Recommended      []ChecklistItem `json:"recommended"`
	EssentialScore   string          `json:"essential_score"`
	RecommendedScore string          `json:"recommended_score"`
}

func buildChecklist(sections Sections, verbs ActionVerbCheck, metrics MetricCheck, redFlags RedFlagCheck, keywords KeywordCheck) Checklist {
	essential := []ChecklistItem{
		{"contact_info", "Contact Information", sections.Contact, "📧"},
		{"summary", "Professional Summary", sections.Summary, "📝"},
		{"experience", "Work Experience", sections.Experience, "💼"},
		{"education", "Education", sections.Education, "🎓"},
		{"skills", "Skills Section", sections.Skills, "🛠️"},
		{"metrics", "Quantifiable Metrics", metrics.HasMetrics, "📊"},
		{"action_verbs", "Action Verbs", verbs.HasEnough, "⚡"},
		{"ats_format", "ATS-Friendly Format", redFlags.Count < 3, "✅"},
	}

	recommended := []ChecklistItem{
		{"linkedin", "LinkedIn Profile", keywordFound(keywords, "linkedin"), "🔗"},
		{"github", "GitHub Profile", keywordFound(keywords, "github"), "🐙"},
		{"projects", "Projects Section", keywordFound(keywords, "project"), "💻"},
		{"certifications", "Certifications", false, "🏆"},
	}

	return Checklist{
		Essential:        essential,
		Recommended:      recommended,
		EssentialScore:   tally(essential),
		RecommendedScore: tally(recommended),
	}
}

func keywordFound(keywords KeywordCheck, term string) bool {
	for _, kw := range keywords.Found {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

func tally(items []ChecklistItem) string {
	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}
	return fmt.Sprintf("%d/%d", checked, len(items))
}
