package auth

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"biolink.GO/config"
	entity "biolink.GO/model/entity"
	authRepo "biolink.GO/model/repository/auth"
)

// Context keys populated by the middleware.
const (
	CtxAuthType = "auth_type"
	CtxUserID   = "user_id"
	CtxRoles    = "roles"
)

// Middleware returns the auth middleware based on AUTH_TYPE env var.
func Middleware(db *gorm.DB) echo.MiddlewareFunc {
	skipper := buildSkipper()
	authType := os.Getenv("AUTH_TYPE")
	switch authType {
	case "key":
		return keyAuth(skipper)
	case "basic":
		return basicAuth(skipper)
	default:
		return tokenAuth(authRepo.NewAuthRepository(db), skipper)
	}
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

// basicAuth and keyAuth are operator credentials configured in the
// environment; both imply the admin role.
func basicAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			ok := username == os.Getenv("API_USER") && password == os.Getenv("API_PASS")
			if ok {
				c.Set(CtxAuthType, "basic")
				c.Set(CtxRoles, []string{entity.RoleAdmin})
			}
			return ok, nil
		},
		Skipper: skipper,
	})
}

func keyAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	apiKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			ok := key == apiKey
			if ok {
				c.Set(CtxAuthType, "static")
				c.Set(CtxRoles, []string{entity.RoleAdmin})
			}
			return ok, nil
		},
		Skipper: skipper,
	})
}

// tokenAuth resolves a bearer token to a user identity and role set.
func tokenAuth(repo *authRepo.AuthRepository, skipper middleware.Skipper) echo.MiddlewareFunc {
	staticKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(token string, c echo.Context) (bool, error) {
			if staticKey != "" && token == staticKey {
				c.Set(CtxAuthType, "static")
				c.Set(CtxRoles, []string{entity.RoleAdmin})
				return true, nil
			}
			apiToken, err := repo.FindActiveToken(token)
			if err != nil {
				return false, nil
			}
			c.Set(CtxAuthType, "token")
			c.Set(CtxUserID, apiToken.UserID)
			roles, err := repo.FindRoles(apiToken.UserID)
			if err == nil {
				c.Set(CtxRoles, roles)
			}
			return true, nil
		},
		Skipper: skipper,
	})
}

// UserID returns the authenticated user's id, or "" for operator credentials.
func UserID(c echo.Context) string {
	if v, ok := c.Get(CtxUserID).(string); ok {
		return v
	}
	return ""
}

// IsAdmin reports whether the request identity carries the admin role.
func IsAdmin(c echo.Context) bool {
	roles, _ := c.Get(CtxRoles).([]string)
	for _, r := range roles {
		if r == entity.RoleAdmin {
			return true
		}
	}
	return false
}
