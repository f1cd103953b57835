package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core"
	"github.com/campushelper/backend/core/user"
)

const claimsContextKey = "userToken"

// Claims represents the authorization claims transmitted via a JWT.
// ID and Role are snapshots of the user at issuance time; the token is never
// stored server-side and is only invalidated by expiry.
type Claims struct {
	jwt.StandardClaims
	ID   string `json:"id"`
	Role string `json:"role"`
}

// newJWTConfig returns the JWT gate middleware config. Gate failures are
// translated in the HTTP error handler: a missing/malformed Authorization
// header becomes 401, a bad signature or expired token becomes 403.
func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    conf.SecretKey,
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    claimsContextKey,
		Claims:        new(Claims),
	}
}

func GetUserClaims(usr user.User, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   usr.ID,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		ID:   usr.ID,
		Role: usr.Role,
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(claims *Claims, conf *core.Config) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(middleware.AlgorithmHS256), claims)

	ss, err := token.SignedString(conf.SecretKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// authenticate validates an email/password pair against the stored identity.
// The "unknown email" vs "wrong password" split mirrors the frontend contract;
// it is a known enumeration weakness kept for compatibility.
func authenticate(ctx echo.Context, email, pwd string, svc *user.Service) (user.User, error) {
	usr, err := svc.GetByEmail(ctx.Request().Context(), email)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return user.User{}, errUserNotFound
		}
		return user.User{}, errors.Wrap(err, "finding user by email")
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return user.User{}, errWrongPassword
	}
	return usr, nil
}

// getContextClaims returns the claims attached by the JWT gate middleware.
// Calling it on a route that is not behind the gate is a pipeline-ordering bug
// and yields errUnauthorized.
func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(claimsContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}
