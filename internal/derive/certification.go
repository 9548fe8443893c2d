package derive

import (
	"github.com/jonathan/skillbank-derive/internal/types"
)

// FixedCertificationStatus is the status every converted certification
// carries. The conversion path does not consult the expiry date; an
// expired certification still converts with status "Active". The
// expiry-aware Status calculator exists for display surfaces but is
// intentionally not called here.
const FixedCertificationStatus = "Active"

// Certification projects a certification into its resume-ready form.
// The bank's issue date becomes the resume's date earned.
func Certification(cert *types.Certification) types.ResumeCertification {
	return types.ResumeCertification{
		Name:            cert.Name,
		Issuer:          cert.Issuer,
		DateEarned:      cert.IssueDate,
		ExpiryDate:      cert.ExpiryDate,
		CredentialID:    cert.CredentialID,
		VerificationURL: cert.VerificationURL,
		Status:          FixedCertificationStatus,
	}
}
