package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/lostfound"
)

type lostFoundApi struct {
	svc      *lostfound.Service
	validate *validator.Validate
}

func registerLostFoundAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *lostfound.Service, validate *validator.Validate) {
	api := lostFoundApi{svc: svc, validate: validate}

	lg := g.Group("/lostfound", jwt)
	lg.POST("", api.create)
	lg.GET("", api.all)
}

func (api *lostFoundApi) create(ctx echo.Context) error {
	var data lostfound.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	item, err := api.svc.Create(ctx.Request().Context(), claims.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating lost & found item")
	}
	return ctx.JSON(http.StatusOK, item)
}

func (api *lostFoundApi) all(ctx echo.Context) error {
	items, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying lost & found items")
	}
	return ctx.JSON(http.StatusOK, items)
}
