package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	autherror "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/errors"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/mocks"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/domain"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/dto"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/handler"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/service"
)

type handlerFixture struct {
	store   *mocks.MockCredentialStore
	codec   *mocks.MockTokenCodec
	renewal *mocks.MockRenewalManager
	limiter *mocks.MockLimiter
	handler *handler.SessionHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &handlerFixture{
		store:   mocks.NewMockCredentialStore(ctrl),
		codec:   mocks.NewMockTokenCodec(ctrl),
		renewal: mocks.NewMockRenewalManager(ctrl),
		limiter: mocks.NewMockLimiter(ctrl),
	}
	sessions := service.NewSessionService(f.store, f.codec, f.renewal, f.limiter, zap.NewNop())
	f.handler = handler.NewSessionHandler(sessions, zap.NewNop())

	return f
}

func TestLogin(t *testing.T) {
	f := newHandlerFixture(t)

	app := fiber.New()
	app.Post("/login", f.handler.Login)

	// app.Test requests originate from 0.0.0.0
	expectedIP := "0.0.0.0"

	t.Run("success", func(t *testing.T) {
		identity := &domain.Identity{ID: "identity-123", Email: "a@x.com", CreatedAt: time.Now()}

		f.limiter.EXPECT().Allow(gomock.Any(), "a@x.com", expectedIP).Return(true, time.Duration(0), nil)
		f.store.EXPECT().FindIdentityByEmail(gomock.Any(), "a@x.com").Return(identity, nil)
		f.codec.EXPECT().Issue(identity).Return("access-token", time.Now().Add(15*time.Minute), nil)
		f.renewal.EXPECT().Issue(gomock.Any(), "identity-123").Return("renewal-secret", time.Now().Add(7*24*time.Hour), nil)
		f.store.EXPECT().RecordAttempt(gomock.Any(), gomock.Any()).Return(nil)
		f.codec.EXPECT().AccessTokenExpiry().Return(15 * time.Minute)

		body, _ := json.Marshal(dto.LoginInput{Email: "a@x.com"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got dto.LoginResponse
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "access-token", got.AccessToken)
		assert.Equal(t, "renewal-secret", got.RefreshToken)
		assert.Equal(t, "Bearer", got.TokenType)
		assert.Equal(t, "identity-123", got.Identity.ID)
		assert.Equal(t, "a@x.com", got.Identity.Email)
	})

	t.Run("too many requests", func(t *testing.T) {
		f.limiter.EXPECT().Allow(gomock.Any(), "a@x.com", expectedIP).Return(false, 5*time.Minute, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: "a@x.com"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "300", resp.Header.Get(fiber.HeaderRetryAfter))

		var got map[string]any
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, float64(300), got["retry_after_seconds"])
	})

	t.Run("bad request - invalid json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", bytes.NewReader([]byte("{invalid-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request - invalid email", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginInput{Email: "not-an-email"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("internal error", func(t *testing.T) {
		f.limiter.EXPECT().Allow(gomock.Any(), "a@x.com", expectedIP).Return(true, time.Duration(0), nil)
		f.store.EXPECT().FindIdentityByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("db error"))
		f.store.EXPECT().RecordAttempt(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(dto.LoginInput{Email: "a@x.com"})
		req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestRefresh(t *testing.T) {
	f := newHandlerFixture(t)

	app := fiber.New()
	app.Post("/refresh", f.handler.Refresh)

	t.Run("success", func(t *testing.T) {
		identity := &domain.Identity{ID: "identity-123", Email: "a@x.com"}

		f.renewal.EXPECT().Redeem(gomock.Any(), "valid-secret").Return(identity, nil)
		f.codec.EXPECT().Issue(identity).Return("fresh-access", time.Time{}, nil)
		f.codec.EXPECT().AccessTokenExpiry().Return(15 * time.Minute)

		body, _ := json.Marshal(dto.RefreshInput{RefreshToken: "valid-secret"})
		req := httptest.NewRequest("POST", "/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unauthorized - generic body", func(t *testing.T) {
		for _, cause := range []error{
			autherror.ErrRenewalInvalid,
			autherror.ErrRenewalRevoked,
			autherror.ErrRenewalExpired,
		} {
			f.renewal.EXPECT().Redeem(gomock.Any(), "stale-secret").Return(nil, cause)

			body, _ := json.Marshal(dto.RefreshInput{RefreshToken: "stale-secret"})
			req := httptest.NewRequest("POST", "/refresh", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			// The body never reveals which condition fired.
			var got map[string]any
			raw, _ := io.ReadAll(resp.Body)
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, "invalid or expired session", got["error"])
		}
	})

	t.Run("bad request - missing token", func(t *testing.T) {
		body, _ := json.Marshal(dto.RefreshInput{})
		req := httptest.NewRequest("POST", "/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("internal error", func(t *testing.T) {
		f.renewal.EXPECT().Redeem(gomock.Any(), "valid-secret").Return(nil, errors.New("db error"))

		body, _ := json.Marshal(dto.RefreshInput{RefreshToken: "valid-secret"})
		req := httptest.NewRequest("POST", "/refresh", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	f := newHandlerFixture(t)

	app := fiber.New()
	app.Delete("/session", f.handler.RequireAuth, f.handler.Logout)

	t.Run("success", func(t *testing.T) {
		claims := &service.AccessClaims{IdentityID: "identity-123", Email: "a@x.com"}
		f.codec.EXPECT().Verify("valid-token").Return(claims, nil)
		f.renewal.EXPECT().RevokeAll(gomock.Any(), "identity-123").Return(2, nil)

		req := httptest.NewRequest("DELETE", "/session", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer valid-token")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/session", nil)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("internal server error", func(t *testing.T) {
		claims := &service.AccessClaims{IdentityID: "identity-123", Email: "a@x.com"}
		f.codec.EXPECT().Verify("valid-token").Return(claims, nil)
		f.renewal.EXPECT().RevokeAll(gomock.Any(), "identity-123").Return(0, errors.New("db error"))

		req := httptest.NewRequest("DELETE", "/session", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer valid-token")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestMe(t *testing.T) {
	f := newHandlerFixture(t)

	app := fiber.New()
	app.Get("/me", f.handler.RequireAuth, f.handler.Me)

	claims := &service.AccessClaims{IdentityID: "identity-123", Email: "a@x.com"}
	f.codec.EXPECT().Verify("valid-token").Return(claims, nil)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer valid-token")

	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]any
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "identity-123", got["identity_id"])
	assert.Equal(t, "a@x.com", got["email"])
}
