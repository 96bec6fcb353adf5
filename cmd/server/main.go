package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"apexgrid/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"apexgrid/internal/cache"
	"apexgrid/internal/config"
	"apexgrid/internal/db"
	"apexgrid/internal/handler"
	"apexgrid/internal/model"
	"apexgrid/internal/repository"
	"apexgrid/internal/router"
	"apexgrid/internal/service"
	"apexgrid/internal/session"
)

// @title ApexGrid API
// @version 1.0
// @description Motorsport team, car, driver and statistics tracker with session-based authentication.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.DriverStats{},
			&model.CarStats{},
			&model.Driver{},
			&model.Car{},
			&model.Team{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.Car{},
		&model.Driver{},
		&model.CarStats{},
		&model.DriverStats{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unreachable, sessions will not persist: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	teamRepo := repository.NewTeamRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	driverRepo := repository.NewDriverRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	// Initialize sessions
	sessions := session.NewManager(cacheClient, cfg.SessionTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	teamService := service.NewTeamService(teamRepo, carRepo, driverRepo)
	carService := service.NewCarService(carRepo, teamRepo)
	driverService := service.NewDriverService(driverRepo, teamRepo)
	statsService := service.NewStatsService(statsRepo, driverRepo, carRepo)
	dashboardService := service.NewDashboardService(teamRepo, carRepo, driverRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.SessionTTL)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, sessions)
	teamHandler := handler.NewTeamHandler(teamService, sessions)
	carHandler := handler.NewCarHandler(carService, teamService, sessions)
	driverHandler := handler.NewDriverHandler(driverService, teamService, sessions)
	statsHandler := handler.NewStatsHandler(statsService, sessions)

	// Register routes
	router.Register(
		e,
		cfg,
		sessions,
		userRepo,
		authHandler,
		dashboardHandler,
		teamHandler,
		carHandler,
		driverHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
