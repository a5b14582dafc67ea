package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	autherror "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/errors"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/dto"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/service"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/pkg/constant"
)

// genericUnauthorized is the single body returned for every refresh or
// token failure so responses leak nothing about which condition fired.
// The precise reason goes to the log instead.
const genericUnauthorized = "invalid or expired session"

type SessionHandler struct {
	sessions *service.SessionService
	logger   *zap.Logger
}

func NewSessionHandler(sessions *service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	input.Email = service.NormalizeEmail(input.Email)
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid email",
		})
	}

	// Capture metadata
	input.OriginAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	resp, err := h.sessions.Login(c.Context(), input)
	if err != nil {
		var rle *autherror.RateLimitError
		if errors.As(err, &rle) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(rle.RetryAfterSeconds()))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":               "too many login attempts",
				"retry_after_seconds": rle.RetryAfterSeconds(),
			})
		}

		h.logger.Error("login failed", zap.String("email", input.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.sessions.Refresh(c.Context(), input)
	if err != nil {
		if isUnauthorized(err) {
			h.logger.Info("refresh rejected", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": genericUnauthorized})
		}

		h.logger.Error("refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	claims := identityFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": genericUnauthorized})
	}

	if err := h.sessions.Logout(c.Context(), claims.IdentityID); err != nil {
		h.logger.Error("logout failed", zap.String("identity_id", claims.IdentityID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

// Me echoes the authenticated identity attached by RequireAuth.
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	claims := identityFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": genericUnauthorized})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"identity_id": claims.IdentityID,
		"email":       claims.Email,
	})
}

// Session reports whether the request carried a valid access token. It sits
// behind OptionalAuth, so an absent or bad token is not an error here.
func (h *SessionHandler) Session(c *fiber.Ctx) error {
	claims := identityFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"authenticated": false})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"identity_id":   claims.IdentityID,
		"email":         claims.Email,
	})
}

func identityFromContext(c *fiber.Ctx) *service.AccessClaims {
	claims, _ := c.Locals(constant.IdentityContextKey).(*service.AccessClaims)
	return claims
}

func isUnauthorized(err error) bool {
	return errors.Is(err, autherror.ErrRenewalInvalid) ||
		errors.Is(err, autherror.ErrRenewalRevoked) ||
		errors.Is(err, autherror.ErrRenewalExpired) ||
		errors.Is(err, autherror.ErrIdentityNotFound)
}
