package derive

import (
	"github.com/jonathan/skillbank-derive/internal/types"
)

// Summary projects already-resolved summary content into its resume-ready
// form. Summary options (the default summary or a named variation) carry
// their content inline, so there is no id-based lookup here; the content
// is copied verbatim.
func Summary(content string) types.ResumeSummary {
	return types.ResumeSummary{Content: content}
}
