package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/evaluation"
)

type evaluationApi struct {
	svc      *evaluation.Service
	validate *validator.Validate
}

func registerEvaluationAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *evaluation.Service, validate *validator.Validate) {
	api := evaluationApi{svc: svc, validate: validate}

	eg := g.Group("/evaluations", jwt)
	eg.GET("", api.calendar)
	eg.GET("/export.ics", api.exportICS)
	eg.POST("", api.create, adminMiddleware())

	dg := eg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

type calendarResponse struct {
	Days          []evaluation.Day `json:"days"`
	UpcomingCount int              `json:"upcoming_count"`
}

// calendar returns the filtered evaluations grouped by day, ascending, each
// badged past/upcoming.
func (api *evaluationApi) calendar(ctx echo.Context) error {
	filter := new(evaluation.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		filter = new(evaluation.QueryFilter)
	}
	filter.Clean()

	days, upcoming, err := api.svc.Calendar(ctx.Request().Context(), *filter, time.Now())
	if err != nil {
		return errors.Wrap(err, "building evaluation calendar")
	}
	return ctx.JSON(http.StatusOK, calendarResponse{Days: days, UpcomingCount: upcoming})
}

func (api *evaluationApi) exportICS(ctx echo.Context) error {
	filter := new(evaluation.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		filter = new(evaluation.QueryFilter)
	}
	filter.Clean()

	ctx.Response().Header().Set(echo.HeaderContentType, "text/calendar; charset=utf-8")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="evaluations.ics"`)
	ctx.Response().WriteHeader(http.StatusOK)

	if err := api.svc.ExportICS(ctx.Request().Context(), ctx.Response(), *filter); err != nil {
		return errors.Wrap(err, "exporting calendar")
	}
	return nil
}

func (api *evaluationApi) create(ctx echo.Context) error {
	var data evaluation.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ev, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating evaluation")
	}
	return ctx.JSON(http.StatusCreated, ev)
}

func (api *evaluationApi) retrieve(ctx echo.Context) error {
	ev, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == evaluation.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding evaluation by ID")
	}
	return ctx.JSON(http.StatusOK, ev)
}

func (api *evaluationApi) update(ctx echo.Context) error {
	ev, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == evaluation.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding evaluation by ID")
	}

	var data evaluation.UpdateEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEvent")
	}
	if err := data.Validate(ev, api.validate); err != nil {
		return err
	}

	ev, err = api.svc.Update(ctx.Request().Context(), ev.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating evaluation")
	}
	return ctx.JSON(http.StatusOK, ev)
}

func (api *evaluationApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting evaluation")
	}
	return ctx.NoContent(http.StatusNoContent)
}
