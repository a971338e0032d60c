package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Konou0luc/ucao-academy-sub000/core"
	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
	"github.com/Konou0luc/ucao-academy-sub000/core/discussion"
	"github.com/Konou0luc/ucao-academy-sub000/core/evaluation"
	"github.com/Konou0luc/ucao-academy-sub000/core/news"
	"github.com/Konou0luc/ucao-academy-sub000/core/schedule"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		UserSvc       user.Service
		CourseSvc     *catalog.Service
		ScheduleSvc   *schedule.Service
		EvalSvc       *evaluation.Service
		NewsSvc       *news.Service
		DiscussionSvc *discussion.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.opts.UserSvc, s.opts.Validate, s.opts.Translator)
	registerCourseAPI(v1, jwt, s.opts.CourseSvc, s.opts.Validate)
	registerScheduleAPI(v1, jwt, s.opts.ScheduleSvc, s.opts.Validate)
	registerEvaluationAPI(v1, jwt, s.opts.EvalSvc, s.opts.Validate)
	registerNewsAPI(v1, jwt, s.opts.NewsSvc, s.opts.UserSvc, s.opts.Validate)
	registerDiscussionAPI(v1, jwt, s.opts.DiscussionSvc, s.opts.UserSvc, s.opts.Validate)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to UCAO Academy API!")
}
