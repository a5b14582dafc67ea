package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	autherror "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/errors"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/service"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/pkg/constant"
)

const bearerPrefix = "Bearer "

// RequireAuth is the access gate: it extracts and verifies the bearer
// token and attaches the claims for downstream handlers. Every failure is
// a 401 with the generic body; the precise reason only reaches the log.
func (h *SessionHandler) RequireAuth(c *fiber.Ctx) error {
	claims, err := h.verifyRequest(c)
	if err != nil {
		h.logger.Info("request rejected",
			zap.String("path", c.Path()),
			zap.String("reason", gateReason(err)))

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": genericUnauthorized})
	}

	c.Locals(constant.IdentityContextKey, claims)

	return c.Next()
}

// OptionalAuth performs the same extraction and verification but never
// fails the request: handlers downstream decide whether an identity is
// required.
func (h *SessionHandler) OptionalAuth(c *fiber.Ctx) error {
	if claims, err := h.verifyRequest(c); err == nil {
		c.Locals(constant.IdentityContextKey, claims)
	}

	return c.Next()
}

func (h *SessionHandler) verifyRequest(c *fiber.Ctx) (*service.AccessClaims, error) {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return nil, autherror.ErrTokenMissing
	}

	if !strings.HasPrefix(auth, bearerPrefix) {
		return nil, autherror.ErrTokenMalformed
	}

	token := strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix))
	if token == "" {
		return nil, autherror.ErrTokenMalformed
	}

	return h.sessions.ValidateToken(token)
}

// gateReason maps a gate failure to its stable machine-readable reason.
func gateReason(err error) string {
	switch {
	case errors.Is(err, autherror.ErrTokenMissing):
		return "missing"
	case errors.Is(err, autherror.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, autherror.ErrTokenExpired):
		return "expired"
	default:
		return "invalid"
	}
}
