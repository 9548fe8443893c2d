// Package bank provides access to the external Skill Bank service and its
// local snapshot formats. It owns the single read contract the derivation
// core depends on; no write path exists here.
package bank

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/skillbank-derive/internal/types"
)

// Repository is the canonical repository read contract. Implementations
// must return a normalized, validated bank: every entity's HasVariations
// flag agrees with the variation indexes, and ids are unique within their
// collections.
type Repository interface {
	FetchSkillBank(ctx context.Context, userID uuid.UUID) (*types.SkillBank, error)
}
