package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/moodsnap/moodsnap/internal/cache"
	"github.com/moodsnap/moodsnap/internal/classifier"
	"github.com/moodsnap/moodsnap/internal/config"
	"github.com/moodsnap/moodsnap/internal/database"
	"github.com/moodsnap/moodsnap/internal/handler"
	"github.com/moodsnap/moodsnap/internal/queue"
	"github.com/moodsnap/moodsnap/internal/repository"
	"github.com/moodsnap/moodsnap/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("ensure schema: %v", err)
	}
	cancel()

	// Redis is optional: nil disables history caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; history cache and rate limiting disabled")
	}
	hist := cache.NewHistory(config.LoadHistoryCacheConfig(), rdb)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	logs := repository.NewMoodLogRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	moodH := handler.NewMoodHandler(cfg, users, logs, classifier.NewRandom(), hist)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterMood(e, moodH, cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	// Background consumer keeps its own connection and reconnect loop.
	go func() {
		if err := queue.StartMoodConsumer(); err != nil {
			log.Printf("mood consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
