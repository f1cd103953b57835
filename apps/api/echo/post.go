package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core/post"
	"github.com/campushelper/backend/core/user"
)

type postApi struct {
	svc      *post.Service
	validate *validator.Validate
}

func registerPostAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *post.Service, validate *validator.Validate) {
	api := postApi{svc: svc, validate: validate}

	pg := g.Group("/post", jwt)
	pg.POST("", api.create)
	pg.GET("/me", api.mine)
	pg.GET("/all", api.all, authorizeRoles(user.RoleAdmin))
}

func (api *postApi) create(ctx echo.Context) error {
	var data post.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	pst, err := api.svc.Create(ctx.Request().Context(), claims.ID, data)
	if err != nil {
		return errors.Wrap(err, "creating post")
	}
	return ctx.JSON(http.StatusOK, pst)
}

func (api *postApi) mine(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	posts, err := api.svc.Mine(ctx.Request().Context(), claims.ID)
	if err != nil {
		return errors.Wrap(err, "querying own posts")
	}
	return ctx.JSON(http.StatusOK, posts)
}

// all returns every post with the owner email attached; admin only.
func (api *postApi) all(ctx echo.Context) error {
	posts, err := api.svc.All(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying all posts")
	}
	return ctx.JSON(http.StatusOK, posts)
}
