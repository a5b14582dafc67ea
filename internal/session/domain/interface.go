package domain

//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/domain CredentialStore

import (
	"context"
	"time"
)

// CredentialStore is the persistence boundary for identities, renewal
// credentials and attempt history. Lookups that find nothing return
// (nil, nil); only infrastructure failures are errors.
type CredentialStore interface {
	FindIdentityByEmail(ctx context.Context, email string) (*Identity, error)
	FindIdentityByID(ctx context.Context, id string) (*Identity, error)
	// CreateIdentity returns autherror.ErrIdentityExists when raced against
	// a concurrent create for the same email.
	CreateIdentity(ctx context.Context, identity *Identity) error

	StoreRenewalCredential(ctx context.Context, rc *RenewalCredential) error
	FindRenewalCredentialByHash(ctx context.Context, secretHash string) (*RenewalCredential, error)
	RevokeRenewalCredential(ctx context.Context, id string) error
	// RevokeAllRenewalCredentials revokes every non-revoked credential owned
	// by the identity and returns how many rows changed.
	RevokeAllRenewalCredentials(ctx context.Context, identityID string) (int, error)

	RecordAttempt(ctx context.Context, attempt *AttemptRecord) error
	// CountAttemptsByEmail returns the number of attempts (any outcome) for
	// the email since the given instant, along with the oldest matching
	// created_at (zero when the count is zero).
	CountAttemptsByEmail(ctx context.Context, email string, since time.Time) (int, time.Time, error)
	// CountFailedAttemptsByOrigin is the failed-only equivalent keyed by
	// origin address.
	CountFailedAttemptsByOrigin(ctx context.Context, originAddress string, since time.Time) (int, time.Time, error)
}
