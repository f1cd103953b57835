package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/campushelper/backend/apps/api/echo"
	"github.com/campushelper/backend/core"
	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/announcement"
	"github.com/campushelper/backend/core/lostfound"
	"github.com/campushelper/backend/core/post"
	"github.com/campushelper/backend/core/research"
	"github.com/campushelper/backend/core/tutor"
	"github.com/campushelper/backend/core/user"
	emailsvc "github.com/campushelper/backend/services/email"
	logsvc "github.com/campushelper/backend/services/logger"
	"github.com/campushelper/backend/storage/database"
	inmemdb "github.com/campushelper/backend/storage/database/inmem"
	sqlxrepos "github.com/campushelper/backend/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatalf("loading config: %v", err)
	}

	logger := logsvc.NewRollbarLogger(std, conf)
	if err := run(conf, logger); err != nil {
		logger.Fatal("server error", err)
	}
}

func run(conf *core.Config, logger core.Logger) error {
	// mail service
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// repositories
	var (
		usrRepo  user.Repository
		postRepo post.Repository
		ttrRepo  tutor.Repository
		lfRepo   lostfound.Repository
		resRepo  research.Repository
		annRepo  announcement.Repository
		actRepo  activity.Repository
	)
	if conf.Database.Engine == "inmem" {
		// volatile storage, meant for demos and local hacking
		db := inmemdb.Open()
		usrRepo = inmemdb.NewUserRepository(db)
		postRepo = inmemdb.NewPostRepository(db)
		ttrRepo = inmemdb.NewTutorRepository(db)
		lfRepo = inmemdb.NewLostFoundRepository(db)
		resRepo = inmemdb.NewResearchRepository(db)
		annRepo = inmemdb.NewAnnouncementRepository(db)
		actRepo = inmemdb.NewActivityRepository(db)
	} else {
		db, err := database.Open(conf)
		if err != nil {
			return err
		}
		defer db.Close()
		if err = database.Migrate(db); err != nil {
			return err
		}
		usrRepo = sqlxrepos.NewUserRepository(db)
		postRepo = sqlxrepos.NewPostRepository(db)
		ttrRepo = sqlxrepos.NewTutorRepository(db)
		lfRepo = sqlxrepos.NewLostFoundRepository(db)
		resRepo = sqlxrepos.NewResearchRepository(db)
		annRepo = sqlxrepos.NewAnnouncementRepository(db)
		actRepo = sqlxrepos.NewActivityRepository(db)
	}

	deps := &echoapi.Deps{
		Conf:            conf,
		Logger:          logger,
		UserSvc:         user.NewService(usrRepo, mailSvc, conf),
		PostSvc:         post.NewService(postRepo),
		TutorSvc:        tutor.NewService(ttrRepo),
		LostFoundSvc:    lostfound.NewService(lfRepo),
		ResearchSvc:     research.NewService(resRepo),
		AnnouncementSvc: announcement.NewService(annRepo),
		ActivitySvc:     activity.NewService(actRepo),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	app := echoapi.NewServer(conf.Server.Address(), shutdown, deps)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening on " + conf.Server.Address())
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		logger.Info("shutdown started", sig)
		defer logger.Info("shutdown complete", sig)

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			logger.Error("graceful shutdown failed", err)
			return err
		}
	}
	return nil
}
