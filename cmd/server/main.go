package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/okalik/bandstand/internal/config"
	"github.com/okalik/bandstand/internal/database"
	"github.com/okalik/bandstand/internal/handler"
	"github.com/okalik/bandstand/internal/middleware"
	"github.com/okalik/bandstand/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()
	log.Println("Database connection established")

	if err := database.RunMigrations(db, cfg.DBName, cfg.MigrationsDir); err != nil {
		log.Fatal(err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	h := handler.NewDirectoryHandler(db, true)
	router.RegisterRoutes(e, h, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
