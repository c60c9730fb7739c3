package http

import (
	"errors"
	"fmt"
	"strings"

	"skybite/internal/core/application/access"
	"skybite/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrUnauthenticated indicates a missing, malformed, or invalid bearer token.
var ErrUnauthenticated = errors.New("request is not authenticated")

const actorContextKey = "actor"

// Actor is the authenticated caller resolved from a bearer token.
type Actor struct {
	ID   kernel.UUID
	Role access.Role
}

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Authorization bearer token and stores the
// resolved actor in the request context. Tokens are HS256-signed with a
// subject claim carrying the actor id and a role claim.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := parseBearer(c.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return respondError(c, err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func parseBearer(header, secret string) (Actor, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Actor{}, fmt.Errorf("%w: missing bearer token", ErrUnauthenticated)
	}

	claims := &actorClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
			}
			return []byte(secret), nil
		})
	if err != nil || !token.Valid {
		return Actor{}, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	actorID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Actor{}, fmt.Errorf("%w: invalid subject claim", ErrUnauthenticated)
	}
	role, err := access.RoleFromString(claims.Role)
	if err != nil {
		return Actor{}, fmt.Errorf("%w: invalid role claim", ErrUnauthenticated)
	}

	return Actor{ID: actorID, Role: role}, nil
}

// actorFromContext returns the actor stored by AuthMiddleware.
func actorFromContext(c echo.Context) (Actor, error) {
	actor, ok := c.Get(actorContextKey).(Actor)
	if !ok {
		return Actor{}, ErrUnauthenticated
	}
	return actor, nil
}
