package derive

import (
	"time"
)

// Certification display statuses computed from the expiry date.
const (
	StatusActive       = "Active"
	StatusExpiringSoon = "Expiring Soon"
	StatusExpired      = "Expired"
)

// expiringSoonWindow is how far ahead of the expiry date a certification
// is reported as expiring.
const expiringSoonWindow = 30 * 24 * time.Hour

// expiryDateLayouts are the accepted date formats, tried in order.
var expiryDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// Status computes an expiry-aware display status for a certification:
// Expired once the expiry date has passed, Expiring Soon within 30 days of
// it, Active otherwise. A missing or unparseable expiry date reads as
// Active. Used by display surfaces only; the Certification adapter always
// emits FixedCertificationStatus.
func Status(expiryDate string, now time.Time) string {
	if expiryDate == "" {
		return StatusActive
	}

	expiry, ok := parseExpiry(expiryDate)
	if !ok {
		return StatusActive
	}

	if expiry.Before(now) {
		return StatusExpired
	}
	if expiry.Sub(now) <= expiringSoonWindow {
		return StatusExpiringSoon
	}
	return StatusActive
}

func parseExpiry(value string) (time.Time, bool) {
	for _, layout := range expiryDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
