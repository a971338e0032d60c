package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/news"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

type newsApi struct {
	svc      *news.Service
	userSvc  user.Service
	validate *validator.Validate
}

func registerNewsAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *news.Service, userSvc user.Service, validate *validator.Validate) {
	api := newsApi{svc: svc, userSvc: userSvc, validate: validate}

	ng := g.Group("/news", jwt)
	ng.GET("", api.query)
	ng.POST("", api.create, adminMiddleware())

	dg := ng.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

func (api *newsApi) query(ctx echo.Context) error {
	articles, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying articles")
	}
	if articles == nil {
		articles = []news.Article{}
	}
	return ctx.JSON(http.StatusOK, articles)
}

func (api *newsApi) create(ctx echo.Context) error {
	var data news.NewArticle
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewArticle")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	article, err := api.svc.Create(ctx.Request().Context(), data, ctxUsr.ID)
	if err != nil {
		return errors.Wrap(err, "creating article")
	}
	return ctx.JSON(http.StatusCreated, article)
}

func (api *newsApi) retrieve(ctx echo.Context) error {
	article, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == news.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding article by ID")
	}
	return ctx.JSON(http.StatusOK, article)
}

func (api *newsApi) update(ctx echo.Context) error {
	article, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == news.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding article by ID")
	}

	var data news.UpdateArticle
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateArticle")
	}
	if err := data.Validate(article, api.validate); err != nil {
		return err
	}

	article, err = api.svc.Update(ctx.Request().Context(), article.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating article")
	}
	return ctx.JSON(http.StatusOK, article)
}

func (api *newsApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting article")
	}
	return ctx.NoContent(http.StatusNoContent)
}
