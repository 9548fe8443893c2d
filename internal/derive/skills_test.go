package derive

import (
	"testing"

	"github.com/jonathan/skillbank-derive/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills_FlattensAllCategories(t *testing.T) {
	skills := map[string][]types.SkillEntry{
		"Languages": {
			{Name: "Go", Level: "expert", YearsExperience: 6},
			{Name: "Python", Level: "intermediate"},
		},
		"Databases": {
			{Name: "PostgreSQL", Level: "advanced"},
		},
	}

	result := Skills(skills)
	require.Len(t, result, 3)

	// Categories come out sorted; order within a category is preserved
	assert.Equal(t, "PostgreSQL", result[0].Name)
	assert.Equal(t, "Databases", result[0].Category)
	assert.Equal(t, "Go", result[1].Name)
	assert.Equal(t, "Languages", result[1].Category)
	assert.Equal(t, "Python", result[2].Name)
}

func TestSkills_LevelBecomesProficiencyLevel(t *testing.T) {
	skills := map[string][]types.SkillEntry{
		"Languages": {{Name: "Go", Level: "expert", YearsExperience: 6}},
	}

	result := Skills(skills)
	require.Len(t, result, 1)

	assert.Equal(t, "expert", result[0].ProficiencyLevel)
	assert.Equal(t, 6, result[0].YearsExperience)
}

func TestSkills_DuplicateNamesAcrossCategories_Preserved(t *testing.T) {
	skills := map[string][]types.SkillEntry{
		"Languages": {{Name: "SQL", Level: "advanced"}},
		"Databases": {{Name: "SQL", Level: "expert"}},
	}

	result := Skills(skills)
	require.Len(t, result, 2)

	assert.Equal(t, "SQL", result[0].Name)
	assert.Equal(t, "Databases", result[0].Category)
	assert.Equal(t, "SQL", result[1].Name)
	assert.Equal(t, "Languages", result[1].Category)
}

func TestSkills_EmptyMapping(t *testing.T) {
	result := Skills(nil)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
