package middleware

import (
	"net/http"
	"strings"

	"volunteerhub/core/cache"
	"volunteerhub/core/constants"
	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/core/logger"
	"volunteerhub/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the request middlewares that need app dependencies
type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token, rejects blacklisted tokens and
// stores the parsed claims in the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(ctx.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error:", err)
					return controller.NewErrorResponse(http.StatusInternalServerError,
						errors.ErrInternalServer, "Failed to verify token")
				}
				if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized,
						errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				if ae, ok := err.(*errors.AppError); ok {
					return controller.NewErrorResponse(http.StatusUnauthorized, ae.Code, ae.Message)
				}
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "Invalid token")
			}

			ctx.Set(constants.ContextTokenData, claims)
			return next(ctx)
		}
	}
}

// GetTokenClaims extracts the parsed claims stored by AuthMiddleware.
func GetTokenClaims(ctx echo.Context) (*utils.TokenClaims, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	return claims, ok
}
