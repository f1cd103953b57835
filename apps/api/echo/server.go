package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/campushelper/backend/core"
	"github.com/campushelper/backend/core/activity"
	"github.com/campushelper/backend/core/announcement"
	"github.com/campushelper/backend/core/lostfound"
	"github.com/campushelper/backend/core/post"
	"github.com/campushelper/backend/core/research"
	"github.com/campushelper/backend/core/tutor"
	"github.com/campushelper/backend/core/user"
)

type (
	// Deps holds everything the API needs to serve requests. It is assembled
	// once in main (or in tests) and handed to NewServer.
	Deps struct {
		Conf            *core.Config
		Logger          core.Logger
		UserSvc         *user.Service
		PostSvc         *post.Service
		TutorSvc        *tutor.Service
		LostFoundSvc    *lostfound.Service
		ResearchSvc     *research.Service
		AnnouncementSvc *announcement.Service
		ActivitySvc     *activity.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(ctx context.Context) error
	}

	server struct {
		addr     string
		app      *echo.Echo
		shutdown chan os.Signal
		deps     *Deps
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, shutdown chan os.Signal, deps *Deps) Server {
	srv := &server{
		addr:     addr,
		app:      echo.New(),
		shutdown: shutdown,
		deps:     deps,
	}
	srv.setup()
	return srv
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	validate := validator.New()
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator(enLocale.Locale())
	core.InitValidators(validate, translator)

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, translator, s.signalShutdown)

	// middleware
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.Recover())
	if conf.Debug {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{conf.FrontendBaseURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	s.app.GET("/", s.home)

	api := s.app.Group("/api")
	jwt := middleware.JWTWithConfig(newJWTConfig(conf))

	registerAuthAPI(api, jwt, s.deps.UserSvc, s.deps.ActivitySvc, conf, validate)
	registerPostAPI(api, jwt, s.deps.PostSvc, validate)
	registerTutorAPI(api, s.deps.TutorSvc, validate)
	registerLostFoundAPI(api, jwt, s.deps.LostFoundSvc, validate)
	registerResearchAPI(api, jwt, s.deps.ResearchSvc, validate)
	registerAnnouncementAPI(api, jwt, s.deps.AnnouncementSvc, validate)
	registerAdminAPI(api, jwt, s.deps.UserSvc, s.deps.ActivitySvc)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.deps.Conf.AppName+" API")
}

func (s *server) signalShutdown() {
	if s.shutdown != nil {
		s.shutdown <- syscall.SIGTERM
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

func (s *server) Start() error {
	return s.app.Start(s.addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}
