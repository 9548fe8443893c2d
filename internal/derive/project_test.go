package derive

import (
	"testing"

	"github.com/jonathan/skillbank-derive/internal/types"
	"github.com/stretchr/testify/assert"
)

func testProjectEntry() *types.ProjectEntry {
	return &types.ProjectEntry{
		ID:                  "proj1",
		Name:                "Side Project",
		DefaultDescription:  "CLI for tracking habits",
		DefaultAchievements: []string{"500 GitHub stars"},
		Technologies:        []string{"Go", "SQLite"},
		URL:                 "https://example.com/habits",
		StartDate:           "2023-01",
		HasVariations:       true,
	}
}

func TestProject_DefaultProjection(t *testing.T) {
	result := Project(testProjectEntry(), nil, "")

	assert.Equal(t, "Side Project", result.Name)
	assert.Equal(t, "CLI for tracking habits", result.Description)
	assert.Equal(t, []string{"500 GitHub stars"}, result.Achievements)
	assert.Equal(t, []string{"Go", "SQLite"}, result.Technologies)
	assert.Equal(t, "https://example.com/habits", result.URL)
}

func TestProject_VariationOverride(t *testing.T) {
	variations := []types.ContentVariation{
		{
			ID:           "v1",
			Content:      "Habit tracker used by 2k people",
			Achievements: []string{"Featured in a newsletter"},
		},
	}

	result := Project(testProjectEntry(), variations, "v1")

	assert.Equal(t, "Habit tracker used by 2k people", result.Description)
	assert.Equal(t, []string{"Featured in a newsletter"}, result.Achievements)
}

func TestProject_VariationEmptyAchievements_KeepsDefaults(t *testing.T) {
	variations := []types.ContentVariation{
		{ID: "v1", Content: "Habit tracker used by 2k people", Achievements: []string{}},
	}

	result := Project(testProjectEntry(), variations, "v1")

	assert.Equal(t, []string{"500 GitHub stars"}, result.Achievements)
}

func TestProject_UnknownVariation_FallsBack(t *testing.T) {
	variations := []types.ContentVariation{
		{ID: "v1", Content: "Habit tracker used by 2k people"},
	}

	withoutVariation := Project(testProjectEntry(), variations, "")
	withMissing := Project(testProjectEntry(), variations, "nope")

	assert.Equal(t, withoutVariation, withMissing)
}

func TestProject_DoesNotAliasEntrySlices(t *testing.T) {
	entry := testProjectEntry()

	result := Project(entry, nil, "")
	result.Technologies[0] = "Rust"

	assert.Equal(t, []string{"Go", "SQLite"}, entry.Technologies)
}
