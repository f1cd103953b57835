package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/announcement"
	"github.com/campushelper/backend/core/user"
)

type announcementApi struct {
	svc      *announcement.Service
	validate *validator.Validate
}

func registerAnnouncementAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *announcement.Service, validate *validator.Validate) {
	api := announcementApi{svc: svc, validate: validate}

	ag := g.Group("/announcements", jwt)
	ag.POST("", api.create, authorizeRoles(user.RoleSchool, user.RoleAdmin))
	ag.GET("", api.all)
}

func (api *announcementApi) create(ctx echo.Context) error {
	var data announcement.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	ann, err := api.svc.Create(ctx.Request().Context(), claims.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating announcement")
	}
	return ctx.JSON(http.StatusOK, ann)
}

func (api *announcementApi) all(ctx echo.Context) error {
	anns, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, anns)
}
