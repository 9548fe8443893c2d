package derivation

import (
	"fmt"

	"github.com/jonathan/skillbank-derive/internal/derive"
	"github.com/jonathan/skillbank-derive/internal/types"
)

// DefaultSummaryOptionID is the option id of the bank's default summary,
// as opposed to one of its named variations.
const DefaultSummaryOptionID = "default"

// SummaryOption is one selectable summary: the default or a variation.
// Summary content is already resolved; there is no override lookup.
type SummaryOption struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ExperienceOption is the lightweight list projection of a work
// experience entry, with its variation list resolved from the index.
type ExperienceOption struct {
	ID            string                   `json:"id"`
	Company       string                   `json:"company"`
	Position      string                   `json:"position"`
	StartDate     string                   `json:"start_date"`
	EndDate       string                   `json:"end_date"`
	IsCurrent     bool                     `json:"is_current"`
	HasVariations bool                     `json:"has_variations"`
	Variations    []types.ContentVariation `json:"variations"`
}

// EducationOption is the lightweight list projection of an education entry.
type EducationOption struct {
	ID            string                   `json:"id"`
	Institution   string                   `json:"institution"`
	Degree        string                   `json:"degree"`
	FieldOfStudy  string                   `json:"field_of_study"`
	EndDate       string                   `json:"end_date"`
	HasVariations bool                     `json:"has_variations"`
	Variations    []types.ContentVariation `json:"variations"`
}

// ProjectOption is the lightweight list projection of a project entry.
type ProjectOption struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Technologies  []string                 `json:"technologies"`
	HasVariations bool                     `json:"has_variations"`
	Variations    []types.ContentVariation `json:"variations"`
}

// SkillOption is one flattened skill with its originating category.
type SkillOption struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Level           string `json:"level"`
	YearsExperience int    `json:"years_experience"`
}

// CertificationOption is the lightweight list projection of a certification.
type CertificationOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`
}

// Option is the generic list shape shared by every section, for UIs that
// render heterogeneous section lists. The typed per-section accessors
// carry the full projections.
type Option struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	HasVariations  bool   `json:"has_variations"`
	VariationCount int    `json:"variation_count"`
}

// optionsMemo caches the per-section views built from one record. The
// record pointer keys the memo: views rebuild only when the session's
// record identity changes.
type optionsMemo struct {
	record         *types.SkillBank
	summary        []SummaryOption
	experience     []ExperienceOption
	education      []EducationOption
	projects       []ProjectOption
	skills         []SkillOption
	certifications []CertificationOption
}

func buildOptions(record *types.SkillBank) *optionsMemo {
	return &optionsMemo{
		record:         record,
		summary:        buildSummaryOptions(record),
		experience:     buildExperienceOptions(record),
		education:      buildEducationOptions(record),
		projects:       buildProjectOptions(record),
		skills:         buildSkillOptions(record),
		certifications: buildCertificationOptions(record),
	}
}

func buildSummaryOptions(record *types.SkillBank) []SummaryOption {
	options := make([]SummaryOption, 0, len(record.SummaryVariations)+1)
	if record.DefaultSummary != "" {
		options = append(options, SummaryOption{
			ID:      DefaultSummaryOptionID,
			Title:   "Default",
			Content: record.DefaultSummary,
		})
	}
	for _, v := range record.SummaryVariations {
		options = append(options, SummaryOption{
			ID:      v.ID,
			Title:   v.Title,
			Content: v.Content,
		})
	}
	return options
}

func buildExperienceOptions(record *types.SkillBank) []ExperienceOption {
	options := make([]ExperienceOption, 0, len(record.WorkExperiences))
	for _, entry := range record.WorkExperiences {
		options = append(options, ExperienceOption{
			ID:            entry.ID,
			Company:       entry.Company,
			Position:      entry.Position,
			StartDate:     entry.StartDate,
			EndDate:       entry.EndDate,
			IsCurrent:     entry.IsCurrent,
			HasVariations: entry.HasVariations,
			Variations:    copyVariations(record.ExperienceVariations[entry.ID]),
		})
	}
	return options
}

func buildEducationOptions(record *types.SkillBank) []EducationOption {
	options := make([]EducationOption, 0, len(record.EducationEntries))
	for _, entry := range record.EducationEntries {
		options = append(options, EducationOption{
			ID:            entry.ID,
			Institution:   entry.Institution,
			Degree:        entry.Degree,
			FieldOfStudy:  entry.FieldOfStudy,
			EndDate:       entry.EndDate,
			HasVariations: entry.HasVariations,
			Variations:    copyVariations(record.EducationVariations[entry.ID]),
		})
	}
	return options
}

func buildProjectOptions(record *types.SkillBank) []ProjectOption {
	options := make([]ProjectOption, 0, len(record.Projects))
	for _, entry := range record.Projects {
		technologies := make([]string, len(entry.Technologies))
		copy(technologies, entry.Technologies)

		options = append(options, ProjectOption{
			ID:            entry.ID,
			Name:          entry.Name,
			Technologies:  technologies,
			HasVariations: entry.HasVariations,
			Variations:    copyVariations(record.ProjectVariations[entry.ID]),
		})
	}
	return options
}

func buildSkillOptions(record *types.SkillBank) []SkillOption {
	flattened := derive.Skills(record.Skills)
	options := make([]SkillOption, 0, len(flattened))
	for _, skill := range flattened {
		options = append(options, SkillOption{
			Name:            skill.Name,
			Category:        skill.Category,
			Level:           skill.ProficiencyLevel,
			YearsExperience: skill.YearsExperience,
		})
	}
	return options
}

func buildCertificationOptions(record *types.SkillBank) []CertificationOption {
	options := make([]CertificationOption, 0, len(record.Certifications))
	for _, cert := range record.Certifications {
		options = append(options, CertificationOption{
			ID:         cert.ID,
			Name:       cert.Name,
			Issuer:     cert.Issuer,
			IssueDate:  cert.IssueDate,
			ExpiryDate: cert.ExpiryDate,
		})
	}
	return options
}

// copyVariations returns a defensive copy so option views never alias the
// canonical record's variation lists.
func copyVariations(in []types.ContentVariation) []types.ContentVariation {
	out := make([]types.ContentVariation, len(in))
	copy(out, in)
	return out
}

func (m *optionsMemo) generic(section SectionKey) []Option {
	switch section {
	case SectionSummary:
		options := make([]Option, 0, len(m.summary))
		for _, o := range m.summary {
			label := o.Title
			if label == "" {
				label = o.ID
			}
			options = append(options, Option{ID: o.ID, Label: label})
		}
		return options
	case SectionExperience:
		options := make([]Option, 0, len(m.experience))
		for _, o := range m.experience {
			options = append(options, Option{
				ID:             o.ID,
				Label:          fmt.Sprintf("%s at %s", o.Position, o.Company),
				HasVariations:  o.HasVariations,
				VariationCount: len(o.Variations),
			})
		}
		return options
	case SectionEducation:
		options := make([]Option, 0, len(m.education))
		for _, o := range m.education {
			label := o.Institution
			if o.Degree != "" {
				label = fmt.Sprintf("%s, %s", o.Degree, o.Institution)
			}
			options = append(options, Option{
				ID:             o.ID,
				Label:          label,
				HasVariations:  o.HasVariations,
				VariationCount: len(o.Variations),
			})
		}
		return options
	case SectionProjects:
		options := make([]Option, 0, len(m.projects))
		for _, o := range m.projects {
			options = append(options, Option{
				ID:             o.ID,
				Label:          o.Name,
				HasVariations:  o.HasVariations,
				VariationCount: len(o.Variations),
			})
		}
		return options
	case SectionSkills:
		options := make([]Option, 0, len(m.skills))
		for _, o := range m.skills {
			options = append(options, Option{Label: fmt.Sprintf("%s (%s)", o.Name, o.Category)})
		}
		return options
	case SectionCertifications:
		options := make([]Option, 0, len(m.certifications))
		for _, o := range m.certifications {
			options = append(options, Option{ID: o.ID, Label: o.Name})
		}
		return options
	default:
		// Contact has no bank-derived options
		return []Option{}
	}
}
