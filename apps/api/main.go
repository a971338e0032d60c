package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/Konou0luc/ucao-academy-sub000/apps/api/echo"
	"github.com/Konou0luc/ucao-academy-sub000/core"
	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
	"github.com/Konou0luc/ucao-academy-sub000/core/discussion"
	"github.com/Konou0luc/ucao-academy-sub000/core/evaluation"
	"github.com/Konou0luc/ucao-academy-sub000/core/news"
	"github.com/Konou0luc/ucao-academy-sub000/core/schedule"
	"github.com/Konou0luc/ucao-academy-sub000/core/timegrid"
	"github.com/Konou0luc/ucao-academy-sub000/core/user"
	emailsvc "github.com/Konou0luc/ucao-academy-sub000/services/email"
	logsvc "github.com/Konou0luc/ucao-academy-sub000/services/logger"
	"github.com/Konou0luc/ucao-academy-sub000/storage/database"
	sqlxrepos "github.com/Konou0luc/ucao-academy-sub000/storage/database/sqlxrepo"
)

const shutdownTimeout = 20 * time.Second

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up logger
	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		rollbarLogger := logsvc.NewRollbarLogger(std, core.Conf)
		rollbarLogger.Enable(true)
		logger = rollbarLogger
	}

	logger.Info(fmt.Sprintf("Application initializing : version %q", core.Conf.Build))
	defer logger.Info("Application stopped")

	// set up DB
	db, err := setUpDB()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error(fmt.Sprintf("closing database: %v", err), err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), mailSvc)
	courseSvc := catalog.NewService(sqlxrepos.NewCourseRepository(db))
	windowStart, windowEnd, err := timegrid.ParseWindow(core.Conf.Grid.DayStart, core.Conf.Grid.DayEnd)
	if err != nil {
		logger.Fatal(fmt.Sprintf("invalid grid day window: %v", err), err)
	}
	scheduleSvc := schedule.NewService(sqlxrepos.NewSlotRepository(db), windowStart, windowEnd)
	evalSvc := evaluation.NewService(sqlxrepos.NewEvaluationRepository(db))
	newsSvc := news.NewService(sqlxrepos.NewNewsRepository(db))
	discussionSvc := discussion.NewService(sqlxrepos.NewDiscussionRepository(db))

	// set up validation
	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.RegisterValidators(validate, translator)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:       core.Conf.Server.Addr,
			Logger:     logger,
			Validate:   validate,
			Translator: translator,

			UserSvc:       usrSvc,
			CourseSvc:     courseSvc,
			ScheduleSvc:   scheduleSvc,
			EvalSvc:       evalSvc,
			NewsSvc:       newsSvc,
			DiscussionSvc: discussionSvc,
		},
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
	}()

	if err := app.Start(); err != nil && err != http.ErrServerClosed {
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)
	}
}

func setUpDB() (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(core.Conf); err != nil {
		return nil, err
	}

	db, err := database.Open(core.Conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
