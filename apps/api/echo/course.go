package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
)

type courseApi struct {
	svc      *catalog.Service
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *catalog.Service, validate *validator.Validate) {
	api := courseApi{svc: svc, validate: validate}

	cg := g.Group("/courses", jwt)
	cg.GET("", api.query)
	cg.GET("/catalog", api.catalog)
	cg.POST("", api.create, adminMiddleware())

	dg := cg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

func (api *courseApi) create(ctx echo.Context) error {
	var data catalog.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	course, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, course)
}

func (api *courseApi) query(ctx echo.Context) error {
	filter := new(catalog.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []catalog.Course{})
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	var courses []catalog.Course
	var err error
	if filter.IsEmpty() && len(ordering.Orderings) == 0 {
		courses, err = api.svc.QueryAll(ctx.Request().Context())
	} else {
		courses, err = api.svc.Filter(ctx.Request().Context(), *filter, ordering.Orderings...)
	}
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []catalog.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

// catalog returns the filiere/niveau tree, optionally pruned to ?niveau=.
func (api *courseApi) catalog(ctx echo.Context) error {
	var (
		tree []catalog.Node
		err  error
	)
	if niveau := ctx.QueryParam("niveau"); niveau != "" {
		tree, err = api.svc.TreeByLevel(ctx.Request().Context(), niveau)
	} else {
		tree, err = api.svc.Tree(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "building catalog tree")
	}
	if tree == nil {
		tree = []catalog.Node{}
	}
	return ctx.JSON(http.StatusOK, tree)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	course, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course by ID")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *courseApi) update(ctx echo.Context) error {
	course, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course by ID")
	}

	var data catalog.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(course, api.validate); err != nil {
		return err
	}

	course, err = api.svc.Update(ctx.Request().Context(), course.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *courseApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}
