package evaluator

import (
	"reflect"
	"strings"
	"testing"

	"skillfit/internal/knowledge"
)

func newEvaluator() *Evaluator {
	return NewEvaluator(knowledge.Default())
}

const strongResume = `Jane Smith
Email: jane@example.com | Phone: 987-654-3210 | linkedin.com/in/jane | github.com/jane

Summary
Backend engineer focused on scalable services.

Experience
- Developed a payment api in python and go, increased throughput by 40%
- Led a team of 5 members and reduced costs by 20%
- Deployed docker and kubernetes workloads on aws

Education
Bachelor of Technology, Computer Science University

Skills
python, java, sql, postgresql, docker, kubernetes, rest, microservices
`

func TestEvaluateStrongResume(t *testing.T) {
	res := newEvaluator().Evaluate(strongResume, "backend developer")

	if !res.Sections.Contact || !res.Sections.Summary || !res.Sections.Experience ||
		!res.Sections.Education || !res.Sections.Skills {
		t.Fatalf("expected all sections present, got %+v", res.Sections)
	}
	if res.ActionVerbs.Count < 3 {
		t.Errorf("verb count = %d, want >= 3", res.ActionVerbs.Count)
	}
	if !res.Metrics.HasMetrics {
		t.Errorf("expected metrics detected, got %+v", res.Metrics)
	}
	if res.OverallScore < 50 || res.OverallScore > 100 {
		t.Errorf("overall = %d, want a strong in-bounds score", res.OverallScore)
	}
}

func TestEvaluateEmptyResume(t *testing.T) {
	res := newEvaluator().Evaluate("", "")

	if res.Scores.Experience != 0 {
		t.Errorf("experience = %d, want 0", res.Scores.Experience)
	}
	if res.Scores.Skills != 0 {
		t.Errorf("skills = %d, want 0", res.Scores.Skills)
	}
	// Empty text is short, so one red flag applies.
	if res.RedFlags.Score != 90 {
		t.Errorf("red flag score = %d, want 90", res.RedFlags.Score)
	}
	if res.OverallScore < 0 || res.OverallScore > 100 {
		t.Fatalf("overall out of bounds: %d", res.OverallScore)
	}
}

func TestCheckActionVerbsWholeWord(t *testing.T) {
	e := newEvaluator()
	// "failed" must not match "led"
	none := e.checkActionVerbs("the project failed badly")
	for _, v := range none.Found {
		if v == "led" {
			t.Fatal("matched 'led' inside 'failed'")
		}
	}
	some := e.checkActionVerbs("led the team and developed tooling")
	if some.Count != 2 {
		t.Errorf("count = %d (%v), want 2", some.Count, some.Found)
	}
	if some.Score != 20 {
		t.Errorf("score = %d, want 20", some.Score)
	}
}

func TestCheckMetricsScoring(t *testing.T) {
	res := checkMetrics("increased by 25% and reduced by 10%")
	if res.Count < 2 {
		t.Fatalf("count = %d, want >= 2", res.Count)
	}
	capped := checkMetrics(strings.Repeat("increased by 25% ", 20))
	if capped.Score != 100 {
		t.Errorf("capped score = %d, want 100", capped.Score)
	}
	if len(capped.Found) > 10 {
		t.Errorf("found list len = %d, want <= 10", len(capped.Found))
	}
}

func TestMetricsMonotonic(t *testing.T) {
	base := checkMetrics("increased by 25%")
	more := checkMetrics("increased by 25%. reduced by 10%.")
	if more.Score < base.Score {
		t.Errorf("adding a metric lowered the score: %d -> %d", base.Score, more.Score)
	}
}

func TestCheckRedFlags(t *testing.T) {
	text := "I am a team player and hard worker. Skilled in cobol and flash. Marital status: single."
	flags := checkRedFlags(strings.ToLower(text), text)

	if len(flags.GenericPhrases) != 2 {
		t.Errorf("generic phrases = %v, want 2 entries", flags.GenericPhrases)
	}
	if len(flags.OutdatedSkills) != 2 {
		t.Errorf("outdated skills = %v, want 2 entries", flags.OutdatedSkills)
	}
	if len(flags.PersonalInfo) != 1 {
		t.Errorf("personal info = %v, want 1 entry", flags.PersonalInfo)
	}
	// 2 generic + 2 outdated + 1 personal + 1 short resume = 6 flags
	if flags.Count != 6 {
		t.Errorf("count = %d, want 6", flags.Count)
	}
	if flags.Score != 40 {
		t.Errorf("score = %d, want 40", flags.Score)
	}
}

func TestRedFlagScoreFloor(t *testing.T) {
	parts := append([]string{}, knowledge.GenericPhrases...)
	parts = append(parts, knowledge.OutdatedSkills...)
	flags := checkRedFlags(strings.ToLower(strings.Join(parts, ". ")), strings.Join(parts, ". "))
	if flags.Score != 0 {
		t.Errorf("score = %d, want floor 0", flags.Score)
	}
}

func TestCheckKeywordsFallback(t *testing.T) {
	e := newEvaluator()
	res := e.checkKeywords("strong communication and leadership in planning", "totally_unknown_xyz")
	if len(res.Found) == 0 {
		t.Error("default keyword profile should match communication/leadership/planning")
	}
}

func TestChecklistTallies(t *testing.T) {
	res := newEvaluator().Evaluate(strongResume, "backend developer")
	if len(res.Checklist.Essential) != 8 {
		t.Fatalf("essential items = %d, want 8", len(res.Checklist.Essential))
	}
	if len(res.Checklist.Recommended) != 4 {
		t.Fatalf("recommended items = %d, want 4", len(res.Checklist.Recommended))
	}
	if !strings.HasSuffix(res.Checklist.EssentialScore, "/8") {
		t.Errorf("essential score = %q", res.Checklist.EssentialScore)
	}
}

func TestSuggestionsOrdering(t *testing.T) {
	// Resume with nothing: critical suggestions must come first.
	res := newEvaluator().Evaluate("plain text with nothing useful", "")
	if len(res.Suggestions) == 0 {
		t.Fatal("expected suggestions for a weak resume")
	}
	if !strings.Contains(res.Suggestions[0], "contact information") {
		t.Errorf("first suggestion = %q, want contact info first", res.Suggestions[0])
	}
}

func TestSuggestionsCappedAtThree(t *testing.T) {
	// A bare resume trips nearly every suggestion rule; the result must
	// still surface only the top three.
	res := newEvaluator().Evaluate("plain text with nothing useful", "data scientist")
	if len(res.Suggestions) > 3 {
		t.Fatalf("suggestions = %d entries, want <= 3: %v", len(res.Suggestions), res.Suggestions)
	}
	if len(res.Suggestions) != 3 {
		t.Fatalf("a bare resume should fill all three slots, got %d", len(res.Suggestions))
	}
	if !strings.Contains(res.Suggestions[0], "contact information") {
		t.Errorf("first suggestion = %q, want contact info first", res.Suggestions[0])
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	e := newEvaluator()
	first := e.Evaluate(strongResume, "backend developer")
	second := e.Evaluate(strongResume, "backend developer")
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated evaluation of identical input differs")
	}
}
