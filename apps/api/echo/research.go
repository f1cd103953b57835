package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/research"
)

type researchApi struct {
	svc      *research.Service
	validate *validator.Validate
}

func registerResearchAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *research.Service, validate *validator.Validate) {
	api := researchApi{svc: svc, validate: validate}

	rg := g.Group("/research", jwt)
	rg.POST("", api.create)
	rg.GET("", api.all)
}

func (api *researchApi) create(ctx echo.Context) error {
	var data research.NewMaterial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMaterial")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	mat, err := api.svc.Create(ctx.Request().Context(), claims.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating research material")
	}
	return ctx.JSON(http.StatusOK, mat)
}

func (api *researchApi) all(ctx echo.Context) error {
	mats, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying research materials")
	}
	return ctx.JSON(http.StatusOK, mats)
}
