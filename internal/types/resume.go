package types

// ResumeSummary is the resume-ready form of a summary option
type ResumeSummary struct {
	Content string `json:"content"`
}

// ResumeExperience is the resume-ready form of a work experience entry.
// A resume value is a point-in-time materialization; once copied into a
// draft it may diverge from the live skill bank.
type ResumeExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	IsCurrent    bool     `json:"is_current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// ResumeEducation is the resume-ready form of an education entry.
// The bank's end_date maps to graduation_date.
type ResumeEducation struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree"`
	FieldOfStudy   string   `json:"field_of_study"`
	Location       string   `json:"location"`
	StartDate      string   `json:"start_date"`
	GraduationDate string   `json:"graduation_date"`
	GPA            string   `json:"gpa"`
	Honors         []string `json:"honors"`
	Description    string   `json:"description"`
}

// ResumeProject is the resume-ready form of a project entry
type ResumeProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

// ResumeSkill is one flattened skill tagged with its originating category.
// The bank's level maps to proficiency_level.
type ResumeSkill struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel string `json:"proficiency_level"`
	YearsExperience  int    `json:"years_experience"`
}

// ResumeCertification is the resume-ready form of a certification.
// The bank's issue_date maps to date_earned.
type ResumeCertification struct {
	Name            string `json:"name"`
	Issuer          string `json:"issuer"`
	DateEarned      string `json:"date_earned"`
	ExpiryDate      string `json:"expiry_date"`
	CredentialID    string `json:"credential_id"`
	VerificationURL string `json:"verification_url"`
	Status          string `json:"status"`
}
