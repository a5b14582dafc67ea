// Package errors contains sentinel errors used across layers for stable error mapping.
package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrIdentityExists indicates a unique constraint violation on the email
	// column, raced against a concurrent first login for the same address.
	ErrIdentityExists = errors.New("identity already exists")

	// ErrIdentityNotFound indicates the identity row is absent on a lookup
	// that expects presence.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrTokenMissing indicates no bearer credential was presented.
	ErrTokenMissing = errors.New("authorization token missing")

	// ErrTokenMalformed indicates the authorization header is not of the
	// form "Bearer <token>".
	ErrTokenMalformed = errors.New("authorization header malformed")

	// ErrTokenInvalid covers unparseable input, signature mismatch and
	// incomplete claim sets.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired indicates a well-formed, correctly signed token past
	// its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrRenewalInvalid indicates the presented renewal secret matches no
	// stored credential.
	ErrRenewalInvalid = errors.New("renewal credential invalid")

	// ErrRenewalRevoked indicates the renewal credential was revoked by
	// logout or explicit revocation.
	ErrRenewalRevoked = errors.New("renewal credential revoked")

	// ErrRenewalExpired indicates the renewal credential is past its expiry.
	ErrRenewalExpired = errors.New("renewal credential expired")
)

// RateLimitError reports that login attempts exceeded the policy window.
// RetryAfter is the remaining portion of the window.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many login attempts, retry after %ds", e.RetryAfterSeconds())
}

// RetryAfterSeconds returns the retry delay rounded up to whole seconds,
// never less than one.
func (e *RateLimitError) RetryAfterSeconds() int {
	secs := int((e.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
