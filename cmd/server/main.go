// Command server starts the car rental HTTP API.
//
// Startup order matters: environment, config, logger, database (with
// migrations), redis, repositories, handlers, routes. The queue consumer
// runs in the background and keeps reconnecting on its own; the HTTP
// listener blocks until shutdown.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/car-rental/internal/config"
	"github.com/iliyamo/car-rental/internal/database"
	"github.com/iliyamo/car-rental/internal/handler"
	"github.com/iliyamo/car-rental/internal/lock"
	"github.com/iliyamo/car-rental/internal/logger"
	"github.com/iliyamo/car-rental/internal/queue"
	"github.com/iliyamo/car-rental/internal/repository"
	"github.com/iliyamo/car-rental/internal/router"
)

func main() {
	// .env is optional; in containers everything comes from the real
	// environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := database.Migrate(migrationsDir, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting and caching disabled")
	}

	customers := repository.NewCustomerRepo(db)
	admins := repository.NewAdminRepo(db)
	cars := repository.NewCarRepo(db)
	branches := repository.NewBranchRepo(db)
	packages := repository.NewInsuranceRepo(db)
	reservations := repository.NewReservationRepo(db)

	auth := handler.NewAuthHandler(cfg, customers, admins)
	admin := handler.NewAdminHandler(cars, branches, packages, customers, reservations, log)
	customer := handler.NewCustomerHandler(cars, branches, packages, reservations, lock.NewKeyed(), log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	router.Register(e, cfg, rdb, auth, admin, customer)

	go queue.StartReservationConsumer(log)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
