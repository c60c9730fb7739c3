package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skybite/internal/core/application/access"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, subject, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, actorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseBearer(t *testing.T) {
	actorID := kernel.NewUUID()

	t.Run("valid token resolves the actor", func(t *testing.T) {
		token := signToken(t, testSecret, actorID.String(), "CUSTOMER")

		actor, err := parseBearer("Bearer "+token, testSecret)
		require.NoError(t, err)
		assert.True(t, actorID.IsEqual(actor.ID))
		assert.Equal(t, access.Customer, actor.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := parseBearer("", testSecret)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := parseBearer("Basic dXNlcjpwYXNz", testSecret)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", actorID.String(), "CUSTOMER")

		_, err := parseBearer("Bearer "+token, testSecret)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, actorClaims{
			Role: "CUSTOMER",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   actorID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = parseBearer("Bearer "+signed, testSecret)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("invalid role claim", func(t *testing.T) {
		token := signToken(t, testSecret, actorID.String(), "SUPERUSER")

		_, err := parseBearer("Bearer "+token, testSecret)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("invalid subject claim", func(t *testing.T) {
		token := signToken(t, testSecret, "not-a-uuid", "CUSTOMER")

		_, err := parseBearer("Bearer "+token, testSecret)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestAuthMiddleware(t *testing.T) {
	e := echo.New()
	actorID := kernel.NewUUID()

	next := func(c echo.Context) error {
		actor, err := actorFromContext(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, actor.Role.String())
	}
	handler := AuthMiddleware(testSecret)(next)

	t.Run("authenticated request reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/order/getOrdersByUserId", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, testSecret, actorID.String(), "DELIVERY"))
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "DELIVERY", rec.Body.String())
	})

	t.Run("unauthenticated request gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/order/getOrdersByUserId", nil)
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRespondError_StatusMapping(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", &access.ErrActorIsForbidden{Role: access.Customer, Action: access.ManageFleet}, http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", kernel.NewUUID().String()), http.StatusNotFound},
		{"conflict", errs.NewResourceConflictError("carrier", kernel.NewUUID().String()), http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("orderStatus"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("items"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("batteryLevel", 150, 0, 100), http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			err := respondError(e.NewContext(req, rec), tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
