package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/tutor"
)

type tutorApi struct {
	svc      *tutor.Service
	validate *validator.Validate
}

// registerTutorAPI mounts the tutor directory. It is deliberately open:
// the directory is public-facing and submissions are moderated out-of-band.
func registerTutorAPI(g *echo.Group, svc *tutor.Service, validate *validator.Validate) {
	api := tutorApi{svc: svc, validate: validate}

	tg := g.Group("/tutors")
	tg.POST("", api.create)
	tg.GET("", api.all)
}

func (api *tutorApi) create(ctx echo.Context) error {
	var data tutor.NewTutor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTutor")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tut, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating tutor")
	}
	return ctx.JSON(http.StatusCreated, tut)
}

func (api *tutorApi) all(ctx echo.Context) error {
	tutors, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying tutors")
	}
	return ctx.JSON(http.StatusOK, tutors)
}
