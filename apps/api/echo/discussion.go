package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/discussion"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

type discussionApi struct {
	svc      *discussion.Service
	userSvc  user.Service
	validate *validator.Validate
}

func registerDiscussionAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *discussion.Service, userSvc user.Service, validate *validator.Validate) {
	api := discussionApi{svc: svc, userSvc: userSvc, validate: validate}

	dg := g.Group("/discussions", jwt)
	dg.GET("", api.queryThreads)
	dg.POST("", api.createThread)

	tg := dg.Group("/:id")
	tg.GET("/messages", api.messages)
	tg.POST("/messages", api.postMessage)
	tg.DELETE("", api.destroyThread, adminMiddleware())
}

func (api *discussionApi) queryThreads(ctx echo.Context) error {
	threads, err := api.svc.QueryThreads(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying threads")
	}
	if threads == nil {
		threads = []discussion.ThreadView{}
	}
	return ctx.JSON(http.StatusOK, threads)
}

func (api *discussionApi) createThread(ctx echo.Context) error {
	var data discussion.NewThread
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewThread")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	thread, err := api.svc.CreateThread(ctx.Request().Context(), data, ctxUsr.ID)
	if err != nil {
		return errors.Wrap(err, "creating thread")
	}
	return ctx.JSON(http.StatusCreated, thread)
}

func (api *discussionApi) messages(ctx echo.Context) error {
	msgs, err := api.svc.Messages(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == discussion.ErrThreadNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "querying messages")
	}
	if msgs == nil {
		msgs = []discussion.Message{}
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *discussionApi) postMessage(ctx echo.Context) error {
	var data discussion.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	msg, err := api.svc.PostMessage(ctx.Request().Context(), ctx.Param("id"), data, ctxUsr.ID)
	if err != nil {
		if errors.Cause(err) == discussion.ErrThreadNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "posting message")
	}
	return ctx.JSON(http.StatusCreated, msg)
}

func (api *discussionApi) destroyThread(ctx echo.Context) error {
	if err := api.svc.DeleteThreads(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting thread")
	}
	return ctx.NoContent(http.StatusNoContent)
}
