// Package derive provides the pure section adapters that project canonical
// skill bank entities into resume-ready values. Every adapter is a
// single-shot transform: no retained state, no mutation of its inputs.
package derive

import (
	"github.com/jonathan/skillbank-derive/internal/types"
)

// Experience projects a work experience entry into its resume-ready form.
// When variationID names a variation present in variations, the variation's
// content replaces the default description, and its achievements replace
// the defaults only when non-empty. An unknown variationID falls back
// silently to the entry's defaults; a stale reference to a deleted
// variation must not break derivation.
func Experience(entry *types.ExperienceEntry, variations []types.ContentVariation, variationID string) types.ResumeExperience {
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

	return types.ResumeExperience{
		Company:      entry.Company,
		Position:     entry.Position,
		Location:     entry.Location,
		StartDate:    entry.StartDate,
		EndDate:      entry.EndDate,
		IsCurrent:    entry.IsCurrent,
		Description:  description,
		Achievements: copyStrings(achievements),
	}
}

// copyStrings returns a non-nil copy so resume values never share or
// alias the canonical record's slices.
func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
