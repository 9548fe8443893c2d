package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/skillbank-derive/internal/bank"
	"github.com/jonathan/skillbank-derive/internal/types"
)

// ErrSkillBankNotFound indicates no skill bank document exists for the user
var ErrSkillBankNotFound = errors.New("skill bank not found")

// FetchSkillBank retrieves the stored skill bank document for a user.
// The bank is kept as one JSONB document per user; this core only reads
// it — the canonical repository service owns all writes.
func (db *DB) FetchSkillBank(ctx context.Context, userID uuid.UUID) (*types.SkillBank, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM skill_banks WHERE user_id = $1`,
		userID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrSkillBankNotFound)
		}
		return nil, fmt.Errorf("failed to get skill bank: %w", err)
	}

	return decodeSkillBank(content)
}

// decodeSkillBank unmarshals a stored document and runs it through the
// same normalize and validate ingest as the other repository sources.
func decodeSkillBank(content []byte) (*types.SkillBank, error) {
	var record types.SkillBank
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to decode skill bank document: %w", err)
	}

	bank.Normalize(&record)
	if err := bank.Validate(&record); err != nil {
		return nil, err
	}

	return &record, nil
}
