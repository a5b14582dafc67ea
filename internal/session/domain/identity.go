package domain

import "time"

// Identity is the durable account record keyed by email. Accounts are
// provisioned implicitly on first login; this core never deletes them.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
	CreatedAt   time.Time
}

// RenewalCredential is a long-lived session credential. Only the sha256 of
// the client-held secret is stored. A non-nil RevokedAt is permanent.
type RenewalCredential struct {
	ID         string
	IdentityID string
	SecretHash string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	RevokedAt  *time.Time
}

// Revoked reports whether the credential has been revoked.
func (rc *RenewalCredential) Revoked() bool {
	return rc.RevokedAt != nil
}

// AttemptRecord is an append-only log row for one login attempt, used as
// the sliding-window source for rate limiting. IdentityID is empty when the
// attempt never resolved to an identity.
type AttemptRecord struct {
	ID            string
	Email         string
	IdentityID    string
	Succeeded     bool
	OriginAddress string
	UserAgent     string
	CreatedAt     time.Time
}
