package service

//go:generate mockgen -destination=../../mocks/mock_token_codec.go -package=mocks github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/service TokenCodec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/errors"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/domain"
)

// TokenCodec issues and verifies self-contained signed access tokens. It is
// stateless and safe for concurrent use.
type TokenCodec interface {
	Issue(identity *domain.Identity) (string, time.Time, error)
	Verify(tokenString string) (*AccessClaims, error)
	AccessTokenExpiry() time.Duration
}

type TokenService struct {
	Secret string
	Expiry time.Duration
}

type AccessClaims struct {
	jwt.RegisteredClaims
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Issue signs an HS256 token embedding the identity and the issue/expiry
// instants, and returns it together with the expiry.
func (ts *TokenService) Issue(identity *domain.Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.Expiry)

	claims := AccessClaims{
		IdentityID: identity.ID,
		Email:      identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates an access token. Expired tokens fail with
// ErrTokenExpired; everything else that is wrong with a token (malformed
// input, bad signature, wrong algorithm, missing claims) fails with
// ErrTokenInvalid so callers can log the two cases apart.
func (ts *TokenService) Verify(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, autherror.ErrTokenInvalid
	}

	// A syntactically valid token must still carry the full claims set.
	if claims.IdentityID == "" || claims.Email == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

func (ts *TokenService) AccessTokenExpiry() time.Duration {
	return ts.Expiry
}
