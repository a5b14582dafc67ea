package constant

const (
	// DefaultTokenType is the scheme reported alongside issued access tokens.
	DefaultTokenType = "Bearer"

	// IdentityContextKey is the fiber.Ctx locals key under which the verified
	// access claims are attached by the auth middleware.
	IdentityContextKey = "identity"

	// RenewalSecretBytes is the entropy of a renewal credential before hex
	// encoding.
	RenewalSecretBytes = 32
)
