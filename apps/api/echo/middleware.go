package echoapi

import (
	"github.com/labstack/echo/v4"
)

// authorizeRoles returns a middleware granting access only to the given roles.
// Role matching is exact; an admin does not implicitly pass a school-only
// check. Must be mounted after the JWT gate: without claims in the context the
// request is rejected as unauthenticated.
func authorizeRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}
			return errForbidden
		}
	}
}
