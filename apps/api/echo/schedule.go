package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/schedule"
)

type scheduleApi struct {
	svc      *schedule.Service
	validate *validator.Validate
}

func registerScheduleAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *schedule.Service, validate *validator.Validate) {
	api := scheduleApi{svc: svc, validate: validate}

	sg := g.Group("/schedule", jwt)
	sg.GET("/week", api.week)

	slg := sg.Group("/slots")
	slg.GET("", api.query)
	slg.POST("", api.create, adminMiddleware())

	dg := slg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

// week returns the positioned Monday-to-Saturday grid for the week holding
// ?date= (default: today).
func (api *scheduleApi) week(ctx echo.Context) error {
	ref := time.Now()
	if date := ctx.QueryParam("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		ref = parsed
	}

	filter := new(schedule.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		filter = new(schedule.QueryFilter)
	}
	filter.Clean()

	view, err := api.svc.Week(ctx.Request().Context(), ref, *filter)
	if err != nil {
		return errors.Wrap(err, "building week view")
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *scheduleApi) create(ctx echo.Context) error {
	var data schedule.NewSlot
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSlot")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	slot, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating slot")
	}
	return ctx.JSON(http.StatusCreated, slot)
}

func (api *scheduleApi) query(ctx echo.Context) error {
	slots, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying slots")
	}
	if slots == nil {
		slots = []schedule.Slot{}
	}
	return ctx.JSON(http.StatusOK, slots)
}

func (api *scheduleApi) retrieve(ctx echo.Context) error {
	slot, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding slot by ID")
	}
	return ctx.JSON(http.StatusOK, slot)
}

func (api *scheduleApi) update(ctx echo.Context) error {
	slot, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding slot by ID")
	}

	var data schedule.UpdateSlot
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSlot")
	}
	if err := data.Validate(slot, api.validate); err != nil {
		return err
	}

	slot, err = api.svc.Update(ctx.Request().Context(), slot.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating slot")
	}
	return ctx.JSON(http.StatusOK, slot)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting slot")
	}
	return ctx.NoContent(http.StatusNoContent)
}
