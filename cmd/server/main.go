package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/careerfinder/career-finder/internal/config"
	"github.com/careerfinder/career-finder/internal/database"
	"github.com/careerfinder/career-finder/internal/handler"
	"github.com/careerfinder/career-finder/internal/metrics"
	"github.com/careerfinder/career-finder/internal/middleware"
	"github.com/careerfinder/career-finder/internal/repository"
	"github.com/careerfinder/career-finder/internal/router"
	"github.com/careerfinder/career-finder/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	if err := database.RunMigrations(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	vacancies := repository.NewVacancyRepo(db)
	applications := repository.NewApplicationRepo(db)

	vacancySvc := service.NewVacancyService(vacancies)
	applicationSvc := service.NewApplicationService(applications, vacancies)

	e := echo.New()
	e.HideBanner = true

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	e.Use(collector.Middleware())
	e.GET("/metrics", metrics.Handler(reg))

	// Rate limiting runs on Redis; without a reachable server requests
	// pass unthrottled.
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled {
		if rdb := config.NewRedisClient(); rdb != nil {
			e.Use(middleware.NewTokenBucket(rlCfg, rdb))
		} else {
			log.Printf("redis unavailable, rate limiting disabled")
		}
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterVacancies(e, handler.NewVacancyHandler(vacancySvc), cfg.JWTSecret)
	router.RegisterApplications(e, handler.NewApplicationHandler(applicationSvc), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
