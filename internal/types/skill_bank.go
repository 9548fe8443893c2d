// Package types provides type definitions for structured data used throughout the skill bank derivation system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillBank represents the canonical record of a user's professional facts,
// independent of any one resume. It is fetched once per derivation session
// and treated as immutable for the session's duration.
type SkillBank struct {
	UserID            string             `json:"user_id,omitempty"`
	DefaultSummary    string             `json:"default_summary,omitempty"`
	SummaryVariations []SummaryVariation `json:"summary_variations,omitempty" validate:"dive"`
	WorkExperiences   []ExperienceEntry  `json:"work_experiences,omitempty" validate:"dive"`
	EducationEntries  []EducationEntry   `json:"education_entries,omitempty" validate:"dive"`
	Projects          []ProjectEntry     `json:"projects,omitempty" validate:"dive"`
	Certifications    []Certification    `json:"certifications,omitempty" validate:"dive"`

	// Skills maps a category name to the skills filed under it. Category
	// names are caller-defined and are not deduplicated or validated.
	Skills map[string][]SkillEntry `json:"skills,omitempty" validate:"dive,dive"`

	// Variation indexes keyed by entity id. Summary variations are inlined
	// above, not indexed.
	ExperienceVariations map[string][]ContentVariation `json:"experience_variations,omitempty" validate:"dive,dive"`
	EducationVariations  map[string][]ContentVariation `json:"education_variations,omitempty" validate:"dive,dive"`
	ProjectVariations    map[string][]ContentVariation `json:"project_variations,omitempty" validate:"dive,dive"`
}

// ExperienceEntry represents a single work experience with a stable ID
type ExperienceEntry struct {
	ID                  string   `json:"id" validate:"required"`
	Company             string   `json:"company" validate:"required"`
	Position            string   `json:"position" validate:"required"`
	Location            string   `json:"location,omitempty"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date,omitempty"`
	IsCurrent           bool     `json:"is_current"`
	DefaultDescription  string   `json:"default_description"`
	DefaultAchievements []string `json:"default_achievements,omitempty"`
	HasVariations       bool     `json:"has_variations"`
}

// EducationEntry represents a single education record with a stable ID
type EducationEntry struct {
	ID                 string   `json:"id" validate:"required"`
	Institution        string   `json:"institution" validate:"required"`
	Degree             string   `json:"degree"`
	FieldOfStudy       string   `json:"field_of_study,omitempty"`
	Location           string   `json:"location,omitempty"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date,omitempty"`
	GPA                string   `json:"gpa,omitempty"`
	Honors             []string `json:"honors,omitempty"`
	DefaultDescription string   `json:"default_description,omitempty"`
	HasVariations      bool     `json:"has_variations"`
}

// ProjectEntry represents a single project with a stable ID
type ProjectEntry struct {
	ID                  string   `json:"id" validate:"required"`
	Name                string   `json:"name" validate:"required"`
	DefaultDescription  string   `json:"default_description"`
	DefaultAchievements []string `json:"default_achievements,omitempty"`
	Technologies        []string `json:"technologies,omitempty"`
	URL                 string   `json:"url,omitempty"`
	StartDate           string   `json:"start_date,omitempty"`
	EndDate             string   `json:"end_date,omitempty"`
	HasVariations       bool     `json:"has_variations"`
}

// Certification represents a professional certification
type Certification struct {
	ID              string `json:"id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Issuer          string `json:"issuer"`
	IssueDate       string `json:"issue_date"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	CredentialID    string `json:"credential_id,omitempty"`
	VerificationURL string `json:"verification_url,omitempty"`
}

// SkillEntry represents a single skill within a category
type SkillEntry struct {
	Name            string `json:"name" validate:"required"`
	Level           string `json:"level,omitempty"`
	YearsExperience int    `json:"years_experience,omitempty"`
}

// SummaryVariation represents a named alternative phrasing of the
// professional summary. Unlike entity variations it is already-resolved
// content; there is no id-based override lookup for summaries.
type SummaryVariation struct {
	ID      string `json:"id" validate:"required"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content" validate:"required"`
}

// ContentVariation represents an alternate phrasing of an entity's
// narrative content, selectable instead of the entity's defaults. Content
// always replaces the default description; Achievements replaces the
// default achievements only when non-empty.
type ContentVariation struct {
	ID           string   `json:"id" validate:"required"`
	Title        string   `json:"title,omitempty"`
	Content      string   `json:"content"`
	Achievements []string `json:"achievements,omitempty"`
}

// FindVariation looks up a variation by id within a variation list.
// Returns nil when the id is absent; callers fall back to entity defaults.
func FindVariation(variations []ContentVariation, id string) *ContentVariation {
	for i := range variations {
		if variations[i].ID == id {
			return &variations[i]
		}
	}
	return nil
}
