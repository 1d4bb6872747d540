package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"brainvault/internal/auth"
	"brainvault/internal/errors"
)

const claimsContextKey = "user"

// JWT authenticates requests with a bearer access token. A missing token is
// rejected with 401, an invalid, expired or revoked one with 403.
func JWT(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateAccessToken(token)
			if err != nil {
				return nil, errors.ErrInvalidToken
			}
			revoked, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if err != nil || revoked {
				return nil, errors.ErrInvalidToken
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Message: "missing authorization token",
					Code:    "MISSING_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Message: errors.ErrInvalidToken.Error(),
				Code:    "INVALID_TOKEN",
			})
		},
	})
}

// ClaimsFromContext returns the claims stored by JWT.
func ClaimsFromContext(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}
