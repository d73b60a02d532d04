// Package knowledge is the shared knowledge base for every resume scorer:
// per-role keyword sets, action-verb lists, skill taxonomies, career
// requirement profiles, and salary tables. It is the single source of
// truth the scorers consult; all tables are read-only after construction.
package knowledge

import (
	"sort"
	"strings"
)

// Base is an immutable knowledge-base value object. Scorers receive it by
// reference at construction and never mutate it.
type Base struct {
	careerKeywords    map[string][]string
	careerSkills      map[string][]string
	evaluatorKeywords map[string][]string
	targetRoles       map[string][]string
	roleKeywords      map[string]RoleKeywordSet
	requirements      map[string]CareerRequirements
	experienceLevels  map[string]ExperienceLevel
	skillCategories   []SkillCategory
	baseSalaries      map[string]int
	educationBonuses  []EducationBonus
	industries        []Industry
}

// Default builds the stock knowledge base.
func Default() *Base {
	return &Base{
		careerKeywords:    atsCareerKeywords,
		careerSkills:      careerSkills,
		evaluatorKeywords: evaluatorCareerKeywords,
		targetRoles:       targetRoleKeywords,
		roleKeywords:      roleKeywordSets,
		requirements:      careerRequirements,
		experienceLevels:  experienceLevels,
		skillCategories:   skillCategories,
		baseSalaries:      careerBaseSalaries,
		educationBonuses:  educationBonuses,
		industries:        industries,
	}
}

// ATSCareerKeywords returns the keyword list the ATS analyzer checks for a
// predicted career. Unknown careers yield an empty list; the caller treats
// that as full keyword coverage.
func (b *Base) ATSCareerKeywords(career string) []string {
	return b.careerKeywords[normalizeKey(career)]
}

// CareerSkills returns the canonical skill list for a career, or nil when
// the career is unknown.
func (b *Base) CareerSkills(career string) []string {
	return b.careerSkills[normalizeKey(career)]
}

// AllCareers lists every career the skill table knows, sorted.
func (b *Base) AllCareers() []string {
	return sortedKeys(b.careerSkills)
}

// EvaluatorKeywords returns the rubric-scorer keyword list for a career,
// falling back to the generic "default" list.
func (b *Base) EvaluatorKeywords(career string) []string {
	if kws, ok := b.evaluatorKeywords[normalizeKey(career)]; ok {
		return kws
	}
	return b.evaluatorKeywords["default"]
}

// TargetRoleKeywords returns the keyword list for a target role, falling
// back to the generic "other" profile for unrecognized roles.
func (b *Base) TargetRoleKeywords(role string) []string {
	if kws, ok := b.targetRoles[normalizeKey(role)]; ok {
		return kws
	}
	return b.targetRoles["other"]
}

// KnownTargetRole reports whether the role has its own keyword profile.
func (b *Base) KnownTargetRole(role string) bool {
	_, ok := b.targetRoles[normalizeKey(role)]
	return ok
}

// TargetRoleNames lists the target roles with dedicated keyword profiles,
// sorted.
func (b *Base) TargetRoleNames() []string {
	return sortedKeys(b.targetRoles)
}

// RoleKeywords returns the grouped (technical/tools/concepts) keyword set
// for a role, falling back to the "default" set.
func (b *Base) RoleKeywords(role string) RoleKeywordSet {
	if set, ok := b.roleKeywords[normalizeKey(role)]; ok {
		return set
	}
	return b.roleKeywords["default"]
}

// Requirements returns the career requirement profile for a target role.
// The second return is false when the role has no profile; callers degrade
// to an empty profile rather than erroring.
func (b *Base) Requirements(role string) (CareerRequirements, bool) {
	req, ok := b.requirements[normalizeKey(role)]
	return req, ok
}

// Level returns the experience-level profile, falling back to beginner for
// unrecognized levels.
func (b *Base) Level(level string) ExperienceLevel {
	if lvl, ok := b.experienceLevels[normalizeKey(level)]; ok {
		return lvl
	}
	return b.experienceLevels[LevelBeginner]
}

// KnownLevel reports whether the experience level is recognized.
func (b *Base) KnownLevel(level string) bool {
	_, ok := b.experienceLevels[normalizeKey(level)]
	return ok
}

// LevelNames lists the recognized experience levels, sorted.
func (b *Base) LevelNames() []string {
	return sortedKeys(b.experienceLevels)
}

// SkillCategories returns the skill taxonomy in its declaration order.
func (b *Base) SkillCategories() []SkillCategory {
	return b.skillCategories
}

// SkillCategoryNamed returns the taxonomy entry for a category name.
func (b *Base) SkillCategoryNamed(name string) (SkillCategory, bool) {
	for _, cat := range b.skillCategories {
		if cat.Name == name {
			return cat, true
		}
	}
	return SkillCategory{}, false
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
