package derivation

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned by the Derive helpers when no skill bank is
// available, either because Load has not run or because it failed.
var ErrNotLoaded = errors.New("skill bank not loaded")

// NotFoundError reports a Derive call that referenced an entity id absent
// from the loaded bank. Unknown variation ids are not errors (they fall
// back to entity defaults); unknown entity ids are.
type NotFoundError struct {
	Section SectionKey
	ID      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s entry with id %q in skill bank", e.Section, e.ID)
}
