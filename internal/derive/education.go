package derive

import (
	"github.com/jonathan/skillbank-derive/internal/types"
)

// Education projects an education entry into its resume-ready form. The
// bank's end date becomes the resume's graduation date. Education
// variations carry description overrides only; there are no achievement
// lists to replace.
func Education(entry *types.EducationEntry, variations []types.ContentVariation, variationID string) types.ResumeEducation {
	description := entry.DefaultDescription

	if variationID != "" {
		if v := types.FindVariation(variations, variationID); v != nil {
			description = v.Content
		}
	}

	return types.ResumeEducation{
		Institution:    entry.Institution,
		Degree:         entry.Degree,
		FieldOfStudy:   entry.FieldOfStudy,
		Location:       entry.Location,
		StartDate:      entry.StartDate,
		GraduationDate: entry.EndDate,
		GPA:            entry.GPA,
		Honors:         copyStrings(entry.Honors),
		Description:    description,
	}
}
