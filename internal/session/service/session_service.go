package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	autherror "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/errors"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/domain"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/dto"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/limiter"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/pkg/constant"
)

// SessionService orchestrates login, renewal, logout and token
// validation. It is the only component exposed to request handlers.
type SessionService struct {
	store   domain.CredentialStore
	codec   TokenCodec
	renewal RenewalManager
	limiter limiter.Limiter
	logger  *zap.Logger
}

func NewSessionService(store domain.CredentialStore, codec TokenCodec, renewal RenewalManager,
	lim limiter.Limiter, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:   store,
		codec:   codec,
		renewal: renewal,
		limiter: lim,
		logger:  logger,
	}
}

// NormalizeEmail lower-cases and trims an email address. All lookups and
// attempt rows use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login authenticates by email identity, provisioning an account on first
// contact. Flow: rate-limit gate, find-or-create identity, issue access
// and renewal credentials, record the attempt.
func (s *SessionService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	email := NormalizeEmail(input.Email)

	allowed, retryAfter, err := s.limiter.Allow(ctx, email, input.OriginAddress)
	if err != nil {
		return nil, err
	}
	if !allowed {
		// The caller already knows it is throttled; no attempt row.
		return nil, &autherror.RateLimitError{RetryAfter: retryAfter}
	}

	identity, err := s.findOrCreateIdentity(ctx, email)
	if err != nil {
		s.recordAttempt(ctx, email, "", input, false)
		return nil, err
	}

	accessToken, _, err := s.codec.Issue(identity)
	if err != nil {
		s.recordAttempt(ctx, email, identity.ID, input, false)
		return nil, err
	}

	renewalSecret, _, err := s.renewal.Issue(ctx, identity.ID)
	if err != nil {
		s.recordAttempt(ctx, email, identity.ID, input, false)
		return nil, err
	}

	s.recordAttempt(ctx, email, identity.ID, input, true)

	return &dto.LoginResponse{
		TokenResponse: dto.TokenResponse{
			AccessToken:  accessToken,
			TokenType:    constant.DefaultTokenType,
			ExpiresIn:    int(s.codec.AccessTokenExpiry().Seconds()),
			RefreshToken: renewalSecret,
		},
		Identity: identityOutput(identity),
	}, nil
}

// Refresh exchanges a renewal secret for a fresh access token. It records
// no attempt rows and leaves the renewal credential untouched.
func (s *SessionService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	identity, err := s.renewal.Redeem(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := s.codec.Issue(identity)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   constant.DefaultTokenType,
		ExpiresIn:   int(s.codec.AccessTokenExpiry().Seconds()),
	}, nil
}

// Logout revokes every live renewal credential for the identity.
// Idempotent: repeated calls revoke zero additional records.
func (s *SessionService) Logout(ctx context.Context, identityID string) error {
	count, err := s.renewal.RevokeAll(ctx, identityID)
	if err != nil {
		return err
	}

	s.logger.Info("sessions revoked",
		zap.String("identity_id", identityID),
		zap.Int("revoked", count))

	return nil
}

// ValidateToken verifies an access token and returns its claims.
func (s *SessionService) ValidateToken(tokenString string) (*AccessClaims, error) {
	return s.codec.Verify(tokenString)
}

// findOrCreateIdentity resolves the email to an identity, provisioning one
// on first login. A create that loses the uniqueness race against a
// concurrent first login is retried once, which then finds the
// now-existing row.
func (s *SessionService) findOrCreateIdentity(ctx context.Context, email string) (*domain.Identity, error) {
	var identity *domain.Identity

	err := retry.Do(ctx, retry.WithMaxRetries(1, retry.NewConstant(10*time.Millisecond)), func(ctx context.Context) error {
		existing, err := s.store.FindIdentityByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			identity = existing
			return nil
		}

		created := &domain.Identity{
			ID:        uuid.NewString(),
			Email:     email,
			CreatedAt: time.Now(),
		}
		if err := s.store.CreateIdentity(ctx, created); err != nil {
			if errors.Is(err, autherror.ErrIdentityExists) {
				return retry.RetryableError(err)
			}
			return err
		}

		identity = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// recordAttempt writes a login-attempt row. Failures are logged and never
// escalated: attempt history is audit-adjacent bookkeeping and must not
// fail an otherwise successful login.
func (s *SessionService) recordAttempt(ctx context.Context, email, identityID string, input dto.LoginInput, succeeded bool) {
	attempt := &domain.AttemptRecord{
		ID:            uuid.NewString(),
		Email:         email,
		IdentityID:    identityID,
		Succeeded:     succeeded,
		OriginAddress: input.OriginAddress,
		UserAgent:     input.UserAgent,
		CreatedAt:     time.Now(),
	}

	if err := s.store.RecordAttempt(ctx, attempt); err != nil {
		s.logger.Warn("failed to record login attempt",
			zap.String("email", email),
			zap.Bool("succeeded", succeeded),
			zap.Error(err))
	}
}

func identityOutput(identity *domain.Identity) dto.IdentityOutput {
	return dto.IdentityOutput{
		ID:          identity.ID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		CreatedAt:   identity.CreatedAt,
	}
}
