package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	zlog "github.com/rs/zerolog/log"

	"github.com/jeunessebiere/site-api/internal/cleanup"
	"github.com/jeunessebiere/site-api/internal/config"
	"github.com/jeunessebiere/site-api/internal/logger"
	"github.com/jeunessebiere/site-api/internal/repository"
	"github.com/jeunessebiere/site-api/internal/service"
	"github.com/jeunessebiere/site-api/internal/storage"
	"github.com/jeunessebiere/site-api/internal/transport/http/handlers"
	"github.com/jeunessebiere/site-api/internal/transport/http/router"
)

const tokenSweepInterval = time.Hour

// App holds the wired dependencies of the service.
type App struct {
	Config  *config.Config
	Server  *http.Server
	DB      *sqlx.DB
	Auth    *service.AuthService
	Sweeper *cleanup.TokenSweeper
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if u, err := url.Parse(cfg.DatabaseURL); err == nil {
		zlog.Info().
			Str("db_user", u.User.Username()).
			Str("db_host", u.Host).
			Str("db_name", u.Path).
			Msg("db config loaded")
	}

	db, err := repository.NewPostgresDB(cfg.DatabaseURL, logger.Logger)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if err := repository.Migrate(db, cfg.MigrationsDir, logger.Logger); err != nil {
		zlog.Fatal().Err(err).Msg("migrations failed")
	}

	app, err := NewApp(cfg, db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Auth.Bootstrap(ctx, cfg.AdminPassword); err != nil {
		zlog.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	go app.Sweeper.Run(ctx)

	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	}()

	<-ctx.Done()
	zlog.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("shutdown failed")
	}
}

func NewApp(cfg *config.Config, db *sqlx.DB) (*App, error) {
	// 1) Infrastructure
	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	usersRepo := repository.NewUsersRepository(db)
	tokensRepo := repository.NewTokensRepository(db)
	membersRepo := repository.NewMembersRepository(db)
	eventsRepo := repository.NewEventsRepository(db)
	carouselRepo := repository.NewCarouselRepository(db)
	contactRepo := repository.NewContactRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// 2) Application
	authSvc := service.NewAuthService(usersRepo, tokensRepo)
	membersSvc := service.NewMembersService(membersRepo, store)
	eventsSvc := service.NewEventsService(eventsRepo, store)
	carouselSvc := service.NewCarouselService(carouselRepo, store)
	usersSvc := service.NewUsersService(usersRepo)
	contactSvc := service.NewContactService(contactRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, eventsRepo, store)

	// 3) Transport
	h := router.Handlers{
		Auth:      handlers.NewAuthHandler(authSvc),
		Members:   handlers.NewMembersHandler(membersSvc),
		Events:    handlers.NewEventsHandler(eventsSvc),
		Carousel:  handlers.NewCarouselHandler(carouselSvc),
		Users:     handlers.NewUsersHandler(usersSvc),
		Contact:   handlers.NewContactHandler(contactSvc),
		Dashboard: handlers.NewDashboardHandler(dashboardSvc),
		Health:    handlers.NewHealthHandler(db),
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, authSvc, store.Dir(), cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:  cfg,
		Server:  srv,
		DB:      db,
		Auth:    authSvc,
		Sweeper: cleanup.NewTokenSweeper(tokensRepo, tokenSweepInterval),
	}, nil
}
