package derive

import (
	"github.com/jonathan/skillbank-derive/internal/types"
)

// Project projects a project entry into its resume-ready form, applying
// the same variation override rules as Experience: content always wins,
// achievements only when the variation supplies a non-empty list.
func Project(entry *types.ProjectEntry, variations []types.ContentVariation, variationID string) types.ResumeProject {
	description := entry.DefaultDescription
	achievements := entry.DefaultAchievements

	if variationID != "" {
		if v := types.FindVariation(variations, variationID); v != nil {
			description = v.Content
			if len(v.Achievements) > 0 {
				achievements = v.Achievements
			}
		}
	}

	return types.ResumeProject{
		Name:         entry.Name,
		Description:  description,
		Achievements: copyStrings(achievements),
		Technologies: copyStrings(entry.Technologies),
		URL:          entry.URL,
		StartDate:    entry.StartDate,
		EndDate:      entry.EndDate,
	}
}
