package bank

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/skillbank-derive/internal/types"
)

var structValidator = validator.New()

// Normalize reconciles each entity's HasVariations flag with the variation
// indexes, which are authoritative. It runs at ingest, before the record
// becomes session-immutable; once a session holds the bank, nothing in the
// derivation core mutates it.
func Normalize(bank *types.SkillBank) {
	for i := range bank.WorkExperiences {
		entry := &bank.WorkExperiences[i]
		entry.HasVariations = len(bank.ExperienceVariations[entry.ID]) > 0
	}
	for i := range bank.EducationEntries {
		entry := &bank.EducationEntries[i]
		entry.HasVariations = len(bank.EducationVariations[entry.ID]) > 0
	}
	for i := range bank.Projects {
		entry := &bank.Projects[i]
		entry.HasVariations = len(bank.ProjectVariations[entry.ID]) > 0
	}
}

// Validate checks structural invariants on a normalized bank: required
// fields, id uniqueness within each collection, and variation id
// uniqueness within each entity's variation list.
func Validate(bank *types.SkillBank) error {
	if err := structValidator.Struct(bank); err != nil {
		return &InvalidBankError{Message: "field validation failed", Cause: err}
	}

	if err := checkUniqueEntityIDs(bank); err != nil {
		return err
	}

	for name, index := range map[string]map[string][]types.ContentVariation{
		"experience": bank.ExperienceVariations,
		"education":  bank.EducationVariations,
		"project":    bank.ProjectVariations,
	} {
		for entityID, variations := range index {
			if err := checkUniqueVariationIDs(name, entityID, variations); err != nil {
				return err
			}
		}
	}

	seenSummary := make(map[string]bool)
	for _, v := range bank.SummaryVariations {
		if seenSummary[v.ID] {
			return &InvalidBankError{Message: fmt.Sprintf("duplicate summary variation id %q", v.ID)}
		}
		seenSummary[v.ID] = true
	}

	return nil
}

func checkUniqueEntityIDs(bank *types.SkillBank) error {
	experiences := make(map[string]bool)
	for _, e := range bank.WorkExperiences {
		if experiences[e.ID] {
			return &InvalidBankError{Message: fmt.Sprintf("duplicate experience id %q", e.ID)}
		}
		experiences[e.ID] = true
	}

	education := make(map[string]bool)
	for _, e := range bank.EducationEntries {
		if education[e.ID] {
			return &InvalidBankError{Message: fmt.Sprintf("duplicate education id %q", e.ID)}
		}
		education[e.ID] = true
	}

	projects := make(map[string]bool)
	for _, p := range bank.Projects {
		if projects[p.ID] {
			return &InvalidBankError{Message: fmt.Sprintf("duplicate project id %q", p.ID)}
		}
		projects[p.ID] = true
	}

	certifications := make(map[string]bool)
	for _, c := range bank.Certifications {
		if certifications[c.ID] {
			return &InvalidBankError{Message: fmt.Sprintf("duplicate certification id %q", c.ID)}
		}
		certifications[c.ID] = true
	}

	return nil
}

func checkUniqueVariationIDs(indexName, entityID string, variations []types.ContentVariation) error {
	seen := make(map[string]bool)
	for _, v := range variations {
		if seen[v.ID] {
			return &InvalidBankError{
				Message: fmt.Sprintf("duplicate %s variation id %q for entity %q", indexName, v.ID, entityID),
			}
		}
		seen[v.ID] = true
	}
	return nil
}
