// Package derivation provides the session facade over a user's skill bank:
// it fetches the canonical record, exposes per-section derived option
// views, and resolves entities through the pure section adapters.
package derivation

// SectionKey identifies one resume section.
type SectionKey string

// The seven resume sections a toggle can apply to.
const (
	SectionContact        SectionKey = "contact"
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionProjects       SectionKey = "projects"
	SectionSkills         SectionKey = "skills"
	SectionCertifications SectionKey = "certifications"
)

// SectionKeys returns every resume section in display order.
func SectionKeys() []SectionKey {
	return []SectionKey{
		SectionContact,
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionProjects,
		SectionSkills,
		SectionCertifications,
	}
}

// ValidSection reports whether key names a known resume section.
func ValidSection(key SectionKey) bool {
	for _, k := range SectionKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// SourceMode selects where a resume section's content comes from.
type SourceMode int

const (
	// SourceManual means the section is manually authored (the default).
	SourceManual SourceMode = iota
	// SourceBank means the section is sourced from the skill bank.
	SourceBank
)

func (m SourceMode) String() string {
	if m == SourceBank {
		return "bank"
	}
	return "manual"
}

// Toggles holds the per-section source mode. Keying by section keeps the
// flags structurally independent: setting one section's mode cannot touch
// another's, and toggling never clears already-materialized resume
// content — it only changes which source the editor consults next.
type Toggles map[SectionKey]SourceMode

// NewToggles returns a toggle set with every section on manual authoring.
func NewToggles() Toggles {
	t := make(Toggles, len(SectionKeys()))
	for _, key := range SectionKeys() {
		t[key] = SourceManual
	}
	return t
}

// SetSource sets the source mode for one section.
func (t Toggles) SetSource(key SectionKey, mode SourceMode) {
	t[key] = mode
}

// Source returns the section's mode; unset sections read as manual.
func (t Toggles) Source(key SectionKey) SourceMode {
	return t[key]
}

// UsesBank reports whether the section is sourced from the skill bank.
func (t Toggles) UsesBank(key SectionKey) bool {
	return t[key] == SourceBank
}
