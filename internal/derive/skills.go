package derive

import (
	"sort"

	"github.com/jonathan/skillbank-derive/internal/types"
)

// Skills flattens the category-keyed skills mapping into one resume skill
// per entry, tagging each with its originating category. Categories are
// emitted in sorted order so output is deterministic; within a category
// the bank's order is preserved. Duplicate skill names across categories
// stay as separate entries; category names are not validated.
func Skills(skills map[string][]types.SkillEntry) []types.ResumeSkill {
	categories := make([]string, 0, len(skills))
	for category := range skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	result := make([]types.ResumeSkill, 0)
	for _, category := range categories {
		for _, skill := range skills[category] {
			result = append(result, types.ResumeSkill{
				Name:             skill.Name,
				Category:         category,
				ProficiencyLevel: skill.Level,
				YearsExperience:  skill.YearsExperience,
			})
		}
	}
	return result
}
