package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/skillbank-derive/internal/types"
)

// LoadSkillBank loads a skill bank snapshot from a JSON file, normalizes
// the variation flags, and validates structural invariants.
func LoadSkillBank(path string) (*types.SkillBank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var bank types.SkillBank
	if err := json.Unmarshal(content, &bank); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Normalize(&bank)
	if err := Validate(&bank); err != nil {
		return nil, err
	}

	return &bank, nil
}

// FileRepository serves a skill bank from a local snapshot file. Useful
// for offline derivation and for CLI runs against exported banks.
type FileRepository struct {
	Path string
}

// NewFileRepository creates a repository backed by the snapshot at path
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

// FetchSkillBank loads the snapshot. The file is the single-user export
// of one bank, so the userID only has to match the snapshot's own user id
// when the snapshot carries one.
func (r *FileRepository) FetchSkillBank(_ context.Context, userID uuid.UUID) (*types.SkillBank, error) {
	bank, err := LoadSkillBank(r.Path)
	if err != nil {
		return nil, err
	}

	if bank.UserID != "" && userID != uuid.Nil && bank.UserID != userID.String() {
		return nil, &FetchError{
			UserID:  userID.String(),
			Message: fmt.Sprintf("snapshot belongs to user %s", bank.UserID),
		}
	}

	return bank, nil
}
