package main

import (
	"context"
	"movie_watchlist/api"
	"movie_watchlist/configs"
	"movie_watchlist/db/mongodb"
	"movie_watchlist/db/redis"
	"movie_watchlist/internal/handler"
	"movie_watchlist/internal/repository"
	"movie_watchlist/internal/service"
	"movie_watchlist/internal/session"
	"movie_watchlist/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title			Movie Watchlist
// @version		1.0
// @description	Server rendered movie watchlist backed by the TMDB catalog.
// @BasePath		/
// @Accept			x-www-form-urlencoded
// @Produce		html
func main() {
	configs.LoadEnvVariables()
	config := configs.GetConfigs()
	logger.Init(config.LogLevel, config.LogFormat, os.Stderr)

	if err := config.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.SentryDns,
		Release:          config.SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("sentry.Init")
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	redis.ConnectRedis()
	defer redis.Close()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not initialize mongodb database connection")
	}
	defer mongoDB.Close()

	catalogSvc, err := service.NewCatalogService(service.CatalogOptions{
		ApiKey:          config.TmdbApiKey,
		BaseUrl:         config.TmdbBaseUrl,
		Timeout:         config.TmdbTimeout,
		FeaturedCountry: config.TmdbFeaturedCountry,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("could not initialize movie catalog")
	}

	userRep := repository.NewUserRepository(mongoDB.GetDB())
	if err = userRep.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("could not create user indexes")
	}
	movieRep := repository.NewMovieRepository(mongoDB.GetDB())

	userSvc := service.NewUserService(userRep)
	movieSvc := service.NewMovieService(catalogSvc, movieRep, userRep)
	sessions := session.NewManager(config.SessionSecret, config.SessionMaxAge, nil)

	router := api.InitRouter(api.RouterOptions{
		UserHandler:    handler.NewUserHandler(userSvc, sessions),
		MovieHandler:   handler.NewMovieHandler(movieSvc, catalogSvc, userSvc),
		Sessions:       sessions,
		SecureCookies:  config.CookieSecure,
		StaticDir:      "./static",
		RequestTimeout: config.RequestTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		if err := router.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	if err = router.Listen("0.0.0.0:" + config.Port); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
}
