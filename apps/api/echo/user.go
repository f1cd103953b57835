package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core"
	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/user"
)

type (
	authApi struct {
		svc         *user.Service
		activitySvc *activity.Service
		conf        *core.Config
		validate    *validator.Validate
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	PasswordResetRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}

	authResponse struct {
		Token string          `json:"token"`
		User  user.PublicUser `json:"user"`
	}
)

func registerAuthAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *user.Service,
	activitySvc *activity.Service,
	conf *core.Config,
	validate *validator.Validate,
) {
	api := authApi{
		svc:         svc,
		activitySvc: activitySvc,
		conf:        conf,
		validate:    validate,
	}

	ag := g.Group("/auth")
	ag.POST("/signup", api.signup)
	// TODO: rate limit `/login` & `/password-reset`
	ag.POST("/login", api.login)
	ag.POST("/password-reset", api.requestPasswordReset)
	ag.POST("/password-reset-confirm", api.confirmPasswordReset)
	ag.GET("/profile", api.profile, jwt)
}

func (api *authApi) signup(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == user.ErrEmailExists {
			return errUserExists
		}
		return errors.Wrap(err, "creating user")
	}
	api.logActivity(ctx, fmt.Sprintf("New %s signed up: %s", usr.Role, usr.Email))
	return api.respondWithToken(ctx, usr)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	usr, err := authenticate(ctx, data.Email, data.Password, api.svc)
	if err != nil {
		return err
	}
	if usr, err = api.svc.SetLastLogin(ctx.Request().Context(), usr); err != nil {
		return errors.Wrap(err, "setting last login")
	}
	api.logActivity(ctx, fmt.Sprintf("%s logged in: %s", usr.Role, usr.Email))
	return api.respondWithToken(ctx, usr)
}

// profile returns the identity record of the token bearer. The role comes from
// storage, not from the token claims, so a stale token still shows the
// current role here.
func (api *authApi) profile(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	usr, err := api.svc.GetByID(ctx.Request().Context(), claims.ID)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errProfileNotFound
		}
		return errors.Wrap(err, "finding user by ID")
	}
	return ctx.JSON(http.StatusOK, usr.Public())
}

// requestPasswordReset always responds 200 so the endpoint cannot be used to
// probe which emails are registered.
func (api *authApi) requestPasswordReset(ctx echo.Context) error {
	var data PasswordResetRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PasswordResetRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	if err := api.svc.RequestPasswordReset(ctx.Request().Context(), data.Email); !(err == nil || errors.Cause(err) == user.ErrNotFound) {
		// do not return errors to attackers
		ctx.Logger().Errorf("%+v", errors.Wrap(err, "requesting password reset"))
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: "If the email address supplied is associated with an active account on this system, " +
			"an email will arrive in your inbox shortly with instructions to reset your password.",
	})
}

func (api *authApi) confirmPasswordReset(ctx echo.Context) error {
	var data user.ResetUserPassword
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ResetUserPassword")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.ResetPassword(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "resetting password")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Password has been reset with the new password."})
}

func (api *authApi) respondWithToken(ctx echo.Context, usr user.User) error {
	token, err := GenerateToken(GetUserClaims(usr, api.conf), api.conf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, authResponse{Token: token, User: usr.Public()})
}

func (api *authApi) logActivity(ctx echo.Context, action string) {
	if _, err := api.activitySvc.Log(ctx.Request().Context(), action); err != nil {
		ctx.Logger().Errorf("logging activity: %v", err)
	}
}
