package service

//go:generate mockgen -destination=../../mocks/mock_renewal_manager.go -package=mocks github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/service RenewalManager

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	autherror "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/errors"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/domain"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/pkg/constant"
)

// RenewalManager issues, redeems and revokes long-lived renewal
// credentials. The plaintext secret is returned to the caller once and
// never stored or logged.
type RenewalManager interface {
	Issue(ctx context.Context, identityID string) (string, time.Time, error)
	Redeem(ctx context.Context, plainSecret string) (*domain.Identity, error)
	RevokeAll(ctx context.Context, identityID string) (int, error)
}

type RenewalService struct {
	store    domain.CredentialStore
	lifetime time.Duration
}

func NewRenewalService(store domain.CredentialStore, lifetimeHours int) *RenewalService {
	return &RenewalService{
		store:    store,
		lifetime: time.Duration(lifetimeHours) * time.Hour,
	}
}

// HashSecret is the deterministic lookup hash for a renewal secret. The
// secret itself carries 256 bits of entropy, so the stored digest is not
// brute-forceable the way a password hash would need to be.
func HashSecret(plainSecret string) string {
	sum := sha256.Sum256([]byte(plainSecret))
	return hex.EncodeToString(sum[:])
}

// Issue generates a fresh random secret, persists its hash, and returns
// the plaintext for transmission to the client.
func (rs *RenewalService) Issue(ctx context.Context, identityID string) (string, time.Time, error) {
	raw := make([]byte, constant.RenewalSecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate renewal secret: %w", err)
	}
	plainSecret := hex.EncodeToString(raw)

	now := time.Now()
	rc := &domain.RenewalCredential{
		ID:         uuid.NewString(),
		IdentityID: identityID,
		SecretHash: HashSecret(plainSecret),
		ExpiresAt:  now.Add(rs.lifetime),
		CreatedAt:  now,
	}

	if err := rs.store.StoreRenewalCredential(ctx, rc); err != nil {
		return "", time.Time{}, err
	}

	return plainSecret, rc.ExpiresAt, nil
}

// Redeem exchanges a presented secret for its owning identity. The
// credential is left untouched: it stays valid for repeated use until it
// expires or is revoked.
func (rs *RenewalService) Redeem(ctx context.Context, plainSecret string) (*domain.Identity, error) {
	rc, err := rs.store.FindRenewalCredentialByHash(ctx, HashSecret(plainSecret))
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, autherror.ErrRenewalInvalid
	}

	if rc.Revoked() {
		return nil, autherror.ErrRenewalRevoked
	}

	if time.Now().After(rc.ExpiresAt) {
		return nil, autherror.ErrRenewalExpired
	}

	identity, err := rs.store.FindIdentityByID(ctx, rc.IdentityID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrIdentityNotFound
	}

	return identity, nil
}

// RevokeAll revokes every live renewal credential owned by the identity.
func (rs *RenewalService) RevokeAll(ctx context.Context, identityID string) (int, error) {
	return rs.store.RevokeAllRenewalCredentials(ctx, identityID)
}
