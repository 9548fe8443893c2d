package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSnapshot = `{
  "default_summary": "Engineer who ships.",
  "work_experiences": [
    {
      "id": "exp1",
      "company": "Acme",
      "position": "Engineer",
      "start_date": "2021-03",
      "default_description": "Led team",
      "default_achievements": ["Shipped v1"]
    }
  ],
  "experience_variations": {
    "exp1": [
      {"id": "v1", "content": "Led cross-functional team of 12"}
    ]
  }
}`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSkillBank_Success(t *testing.T) {
	path := writeSnapshot(t, testSnapshot)

	bank, err := LoadSkillBank(path)
	require.NoError(t, err)

	assert.Equal(t, "Engineer who ships.", bank.DefaultSummary)
	require.Len(t, bank.WorkExperiences, 1)
	assert.Equal(t, "exp1", bank.WorkExperiences[0].ID)
	// Normalization derives the flag from the index
	assert.True(t, bank.WorkExperiences[0].HasVariations)
}

func TestLoadSkillBank_FileNotFound(t *testing.T) {
	_, err := LoadSkillBank(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadSkillBank_InvalidJSON(t *testing.T) {
	path := writeSnapshot(t, "{not json")

	_, err := LoadSkillBank(path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadSkillBank_InvalidBank(t *testing.T) {
	path := writeSnapshot(t, `{"work_experiences": [{"id": "exp1"}, {"id": "exp1"}]}`)

	_, err := LoadSkillBank(path)
	require.Error(t, err)

	var invalid *InvalidBankError
	assert.ErrorAs(t, err, &invalid)
}

func TestFileRepository_FetchSkillBank(t *testing.T) {
	repo := NewFileRepository(writeSnapshot(t, testSnapshot))

	bank, err := repo.FetchSkillBank(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Len(t, bank.WorkExperiences, 1)
}

func TestFileRepository_UserMismatch(t *testing.T) {
	owner := uuid.New()
	snapshot := `{"user_id": "` + owner.String() + `"}`
	repo := NewFileRepository(writeSnapshot(t, snapshot))

	_, err := repo.FetchSkillBank(context.Background(), uuid.New())
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}
