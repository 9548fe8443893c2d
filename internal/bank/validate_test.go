package bank

import (
	"testing"

	"github.com/jonathan/skillbank-derive/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank() *types.SkillBank {
	return &types.SkillBank{
		DefaultSummary: "Engineer who ships.",
		SummaryVariations: []types.SummaryVariation{
			{ID: "sum1", Title: "Leadership", Content: "Engineering leader."},
		},
		WorkExperiences: []types.ExperienceEntry{
			{ID: "exp1", Company: "Acme", Position: "Engineer", StartDate: "2021-03", DefaultDescription: "Led team"},
			{ID: "exp2", Company: "Globex", Position: "SRE", StartDate: "2018-01", EndDate: "2021-02"},
		},
		EducationEntries: []types.EducationEntry{
			{ID: "edu1", Institution: "State University", StartDate: "2014-09", EndDate: "2018-05"},
		},
		Projects: []types.ProjectEntry{
			{ID: "proj1", Name: "Side Project"},
		},
		Certifications: []types.Certification{
			{ID: "cert1", Name: "CKA", Issuer: "CNCF", IssueDate: "2023-06-01"},
		},
		Skills: map[string][]types.SkillEntry{
			"Languages": {{Name: "Go", Level: "expert"}},
		},
		ExperienceVariations: map[string][]types.ContentVariation{
			"exp1": {{ID: "v1", Content: "Led cross-functional team of 12"}},
		},
	}
}

func TestNormalize_SetsFlagsFromIndexes(t *testing.T) {
	bank := testBank()
	// Raw payloads may carry flags that disagree with the indexes
	bank.WorkExperiences[0].HasVariations = false
	bank.WorkExperiences[1].HasVariations = true
	bank.EducationEntries[0].HasVariations = true
	bank.Projects[0].HasVariations = true

	Normalize(bank)

	assert.True(t, bank.WorkExperiences[0].HasVariations)
	assert.False(t, bank.WorkExperiences[1].HasVariations)
	assert.False(t, bank.EducationEntries[0].HasVariations)
	assert.False(t, bank.Projects[0].HasVariations)
}

func TestNormalize_EmptyVariationList(t *testing.T) {
	bank := testBank()
	bank.ExperienceVariations["exp1"] = []types.ContentVariation{}
	bank.WorkExperiences[0].HasVariations = true

	Normalize(bank)

	assert.False(t, bank.WorkExperiences[0].HasVariations)
}

func TestValidate_AcceptsWellFormedBank(t *testing.T) {
	bank := testBank()
	Normalize(bank)

	assert.NoError(t, Validate(bank))
}

func TestValidate_RejectsDuplicateEntityID(t *testing.T) {
	bank := testBank()
	bank.WorkExperiences = append(bank.WorkExperiences, types.ExperienceEntry{
		ID: "exp1", Company: "Initech", Position: "Engineer",
	})
	Normalize(bank)

	err := Validate(bank)
	require.Error(t, err)

	var invalid *InvalidBankError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Error(), "exp1")
}

func TestValidate_RejectsDuplicateVariationID(t *testing.T) {
	bank := testBank()
	bank.ExperienceVariations["exp1"] = append(bank.ExperienceVariations["exp1"],
		types.ContentVariation{ID: "v1", Content: "Another phrasing"})
	Normalize(bank)

	err := Validate(bank)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v1")
}

func TestValidate_RejectsMissingRequiredFields(t *testing.T) {
	bank := testBank()
	bank.WorkExperiences[0].Company = ""
	Normalize(bank)

	assert.Error(t, Validate(bank))
}

func TestValidate_RejectsDuplicateSummaryVariationID(t *testing.T) {
	bank := testBank()
	bank.SummaryVariations = append(bank.SummaryVariations,
		types.SummaryVariation{ID: "sum1", Content: "Different phrasing."})
	Normalize(bank)

	assert.Error(t, Validate(bank))
}
