package knowledge

import "testing"

func TestUnknownKeysFallBackToDefaults(t *testing.T) {
	kb := Default()

	if got := kb.Level("totally_unknown_xyz"); got.Name != LevelBeginner {
		t.Fatalf("unknown level should fall back to beginner, got %q", got.Name)
	}
	if got := kb.Level(""); got.Name != LevelBeginner {
		t.Fatalf("empty level should fall back to beginner, got %q", got.Name)
	}

	def := kb.TargetRoleKeywords("other")
	if len(def) == 0 {
		t.Fatalf("expected a generic 'other' profile")
	}
	unknown := kb.TargetRoleKeywords("totally_unknown_xyz")
	if len(unknown) != len(def) {
		t.Fatalf("unknown role should resolve to the 'other' profile")
	}
	if kb.KnownTargetRole("totally_unknown_xyz") {
		t.Fatalf("unknown role should not be reported as known")
	}

	if got := kb.EvaluatorKeywords("totally_unknown_xyz"); len(got) == 0 {
		t.Fatalf("unknown career should resolve to the default keyword list")
	}
	if got := kb.RoleKeywords("totally_unknown_xyz"); len(got.Technical) == 0 {
		t.Fatalf("unknown role should resolve to the default keyword set")
	}

	if _, ok := kb.Requirements("totally_unknown_xyz"); ok {
		t.Fatalf("unknown role should have no requirement profile")
	}

	ind := kb.IndustryNamed("totally_unknown_xyz")
	if ind.Name != "general" {
		t.Fatalf("unknown industry should fall back to general, got %q", ind.Name)
	}
}

func TestLookupsAreCaseInsensitive(t *testing.T) {
	kb := Default()

	if len(kb.CareerSkills("Data Scientist")) == 0 {
		t.Fatalf("career lookup should ignore case")
	}
	if len(kb.ATSCareerKeywords("  Data Scientist  ")) == 0 {
		t.Fatalf("career lookup should trim whitespace")
	}
	if kb.Level("Mid-Level").Name != LevelMid {
		t.Fatalf("level lookup should ignore case")
	}
}

func TestSortedNameListsAreStable(t *testing.T) {
	kb := Default()

	careers := kb.AllCareers()
	if len(careers) == 0 {
		t.Fatalf("expected careers")
	}
	for i := 1; i < len(careers); i++ {
		if careers[i-1] > careers[i] {
			t.Fatalf("careers not sorted at %d: %q > %q", i, careers[i-1], careers[i])
		}
	}

	levels := kb.LevelNames()
	if len(levels) != 3 {
		t.Fatalf("expected 3 experience levels, got %v", levels)
	}
}

func TestSkillTaxonomyShape(t *testing.T) {
	kb := Default()

	categories := kb.SkillCategories()
	if len(categories) == 0 {
		t.Fatalf("expected skill categories")
	}
	seen := map[string]bool{}
	for _, cat := range categories {
		if cat.Name == "" || len(cat.Skills) == 0 {
			t.Fatalf("category %q must be named and non-empty", cat.Name)
		}
		if seen[cat.Name] {
			t.Fatalf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
	}

	general, ok := kb.SkillCategoryNamed("general")
	if !ok || len(general.Skills) == 0 {
		t.Fatalf("expected a general (soft skill) category")
	}
	if _, ok := kb.SkillCategoryNamed("no-such-category"); ok {
		t.Fatalf("unknown category should not resolve")
	}
}
