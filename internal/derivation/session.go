package derivation

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/skillbank-derive/internal/bank"
	"github.com/jonathan/skillbank-derive/internal/derive"
	"github.com/jonathan/skillbank-derive/internal/types"
)

// Session scopes one user's derivation work: it fetches the skill bank
// once, holds it immutably, and serves the per-section option views and
// conversion helpers. A failed fetch degrades every view to empty rather
// than failing the session; the editor's manual-authoring path keeps
// working either way.
type Session struct {
	repo   bank.Repository
	userID uuid.UUID

	mu      sync.Mutex
	loadSeq uint64
	record  *types.SkillBank
	loadErr error
	memo    *optionsMemo
}

// NewSession creates a session for one user over the given repository.
func NewSession(repo bank.Repository, userID uuid.UUID) *Session {
	return &Session{repo: repo, userID: userID}
}

// UserID returns the user the session is scoped to.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// Load fetches the skill bank. On success the record is stored; on
// failure the record is cleared and the error is recorded for Err — Load
// never propagates the failure itself, so callers cannot accidentally
// treat a degraded session as fatal. Calling Load again retries. When
// loads overlap, only the most recent call's result is applied; a stale
// response arriving late is discarded by sequence comparison.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	record, err := s.repo.FetchSkillBank(ctx, s.userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.loadSeq {
		// Superseded by a newer Load
		return
	}

	if err != nil {
		s.record = nil
		s.loadErr = err
		s.memo = nil
		return
	}

	s.record = record
	s.loadErr = nil
	s.memo = nil
}

// Loaded reports whether a skill bank is currently available.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record != nil
}

// Err returns the failure recorded by the most recent completed Load, or
// nil after a successful one.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// options returns the memoized views, rebuilding them only when the
// record's identity has changed since they were last built.
func (s *Session) options() *optionsMemo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return nil
	}
	if s.memo == nil || s.memo.record != s.record {
		s.memo = buildOptions(s.record)
	}
	return s.memo
}

// SummaryOptions returns the selectable summaries: the default summary
// first when present, then each named variation.
func (s *Session) SummaryOptions() []SummaryOption {
	if m := s.options(); m != nil {
		return m.summary
	}
	return []SummaryOption{}
}

// ExperienceOptions returns the work experience projections in bank order.
func (s *Session) ExperienceOptions() []ExperienceOption {
	if m := s.options(); m != nil {
		return m.experience
	}
	return []ExperienceOption{}
}

// EducationOptions returns the education projections in bank order.
func (s *Session) EducationOptions() []EducationOption {
	if m := s.options(); m != nil {
		return m.education
	}
	return []EducationOption{}
}

// ProjectOptions returns the project projections in bank order.
func (s *Session) ProjectOptions() []ProjectOption {
	if m := s.options(); m != nil {
		return m.projects
	}
	return []ProjectOption{}
}

// SkillOptions returns every skill flattened across categories.
func (s *Session) SkillOptions() []SkillOption {
	if m := s.options(); m != nil {
		return m.skills
	}
	return []SkillOption{}
}

// CertificationOptions returns the certification projections in bank order.
func (s *Session) CertificationOptions() []CertificationOption {
	if m := s.options(); m != nil {
		return m.certifications
	}
	return []CertificationOption{}
}

// OptionsFor returns the generic list projection for any section. Absent
// or failed records yield an empty list, never an error.
func (s *Session) OptionsFor(section SectionKey) []Option {
	if m := s.options(); m != nil {
		return m.generic(section)
	}
	return []Option{}
}

// DeriveSummary resolves a summary option id (DefaultSummaryOptionID or a
// variation id) into resume-ready summary content.
func (s *Session) DeriveSummary(optionID string) (types.ResumeSummary, error) {
	record, err := s.currentRecord()
	if err != nil {
		return types.ResumeSummary{}, err
	}

	if optionID == DefaultSummaryOptionID {
		return derive.Summary(record.DefaultSummary), nil
	}
	for _, v := range record.SummaryVariations {
		if v.ID == optionID {
			return derive.Summary(v.Content), nil
		}
	}
	return types.ResumeSummary{}, &NotFoundError{Section: SectionSummary, ID: optionID}
}

// DeriveExperience converts one work experience entry, applying the
// variation override rules when variationID is non-empty.
func (s *Session) DeriveExperience(entryID, variationID string) (types.ResumeExperience, error) {
	record, err := s.currentRecord()
	if err != nil {
		return types.ResumeExperience{}, err
	}

	for i := range record.WorkExperiences {
		entry := &record.WorkExperiences[i]
		if entry.ID == entryID {
			return derive.Experience(entry, record.ExperienceVariations[entryID], variationID), nil
		}
	}
	return types.ResumeExperience{}, &NotFoundError{Section: SectionExperience, ID: entryID}
}

// DeriveEducation converts one education entry.
func (s *Session) DeriveEducation(entryID, variationID string) (types.ResumeEducation, error) {
	record, err := s.currentRecord()
	if err != nil {
		return types.ResumeEducation{}, err
	}

	for i := range record.EducationEntries {
		entry := &record.EducationEntries[i]
		if entry.ID == entryID {
			return derive.Education(entry, record.EducationVariations[entryID], variationID), nil
		}
	}
	return types.ResumeEducation{}, &NotFoundError{Section: SectionEducation, ID: entryID}
}

// DeriveProject converts one project entry.
func (s *Session) DeriveProject(entryID, variationID string) (types.ResumeProject, error) {
	record, err := s.currentRecord()
	if err != nil {
		return types.ResumeProject{}, err
	}

	for i := range record.Projects {
		entry := &record.Projects[i]
		if entry.ID == entryID {
			return derive.Project(entry, record.ProjectVariations[entryID], variationID), nil
		}
	}
	return types.ResumeProject{}, &NotFoundError{Section: SectionProjects, ID: entryID}
}

// DeriveSkills flattens the whole skills mapping into resume skills.
func (s *Session) DeriveSkills() ([]types.ResumeSkill, error) {
	record, err := s.currentRecord()
	if err != nil {
		return nil, err
	}
	return derive.Skills(record.Skills), nil
}

// DeriveCertification converts one certification.
func (s *Session) DeriveCertification(certID string) (types.ResumeCertification, error) {
	record, err := s.currentRecord()
	if err != nil {
		return types.ResumeCertification{}, err
	}

	for i := range record.Certifications {
		cert := &record.Certifications[i]
		if cert.ID == certID {
			return derive.Certification(cert), nil
		}
	}
	return types.ResumeCertification{}, &NotFoundError{Section: SectionCertifications, ID: certID}
}

func (s *Session) currentRecord() (*types.SkillBank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return nil, ErrNotLoaded
	}
	return s.record, nil
}
