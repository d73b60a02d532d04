package explain

import (
	"sort"
	"strings"

	"skillfit/internal/scoring"
)

const fallbackSolution = "Review and improve this area"

// buildPriorityFixes turns every category issue into a ranked fix. The
// missing portion of a category's score, scaled by its weight, is split
// evenly across its issues to estimate each fix's gain in overall
// points; fixes sort by gain descending with severity breaking ties.
func buildPriorityFixes(categories []CategoryScore) []PriorityFix {
	var fixes []PriorityFix

	for _, cat := range categories {
		if len(cat.Issues) == 0 {
			continue
		}
		missing := 100 - cat.Score
		gainPerIssue := (missing * cat.Weight / 100) / float64(len(cat.Issues))

		for i, issue := range cat.Issues {
			fixes = append(fixes, PriorityFix{
				Category:      cat.Name,
				Severity:      issueSeverity(cat.Weight, i),
				Issue:         strings.TrimPrefix(issue, "✗ "),
				Solution:      solutionFor(cat.Suggestions, i),
				PotentialGain: gainPerIssue,
			})
		}
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		if fixes[i].PotentialGain != fixes[j].PotentialGain {
			return fixes[i].PotentialGain > fixes[j].PotentialGain
		}
		return fixes[i].Severity.Weight() > fixes[j].Severity.Weight()
	})

	if len(fixes) > 10 {
		fixes = fixes[:10]
	}
	for i := range fixes {
		fixes[i].Priority = i + 1
		fixes[i].PotentialGain = round1(fixes[i].PotentialGain)
	}
	return fixes
}

// issueSeverity grades an issue by its category's weight tier; the
// first issue in a category is always one rung above the rest.
func issueSeverity(weight float64, position int) scoring.Severity {
	switch {
	case weight >= 20:
		if position == 0 {
			return scoring.SeverityCritical
		}
		return scoring.SeverityHigh
	case weight >= 15:
		if position == 0 {
			return scoring.SeverityHigh
		}
		return scoring.SeverityMedium
	default:
		if position == 0 {
			return scoring.SeverityMedium
		}
		return scoring.SeverityLow
	}
}

func solutionFor(suggestions []string, i int) string {
	if i < len(suggestions) {
		return suggestions[i]
	}
	if len(suggestions) > 0 {
		return suggestions[len(suggestions)-1]
	}
	return fallbackSolution
}

// radarData flattens the categories into parallel chart series. Target
// is the 80-point bar a strong resume should clear in every category.
func radarData(categories []CategoryScore) RadarData {
	data := RadarData{
		Labels:  make([]string, len(categories)),
		Scores:  make([]float64, len(categories)),
		Weights: make([]float64, len(categories)),
		Target:  make([]float64, len(categories)),
	}
	for i, cat := range categories {
		data.Labels[i] = cat.Name
		data.Scores[i] = cat.Score
		data.Weights[i] = cat.Weight
		data.Target[i] = 80
	}
	return data
}
