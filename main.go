package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog/log"

	"ibadahku_backend/internals/configs"
	database "ibadahku_backend/internals/databases"
	scheduler "ibadahku_backend/internals/features/users/auth/scheduler"
	middlewares "ibadahku_backend/internals/middlewares"
	"ibadahku_backend/internals/middlewares/logger"
	"ibadahku_backend/internals/middlewares/metrics"
	routes "ibadahku_backend/internals/route"
	"ibadahku_backend/internals/seeds"
)

func main() {
	configs.InitLogger()
	configs.LoadEnv()

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	if err := database.EnsureTables(database.DB); err != nil {
		log.Fatal().Err(err).Msg("❌ Gagal memastikan tabel")
	}

	// `go run . seed` → seed lalu keluar
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		seeds.RunAllSeeds(database.DB)
		database.Close()
		return
	}
	if configs.GetEnvBool("SEED_ON_START", false) {
		seeds.RunAllSeeds(database.DB)
	}
	database.WarmUpQueries()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          middlewares.ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestID())
	app.Use(middlewares.CorsMiddleware(configs.CorsOrigins))
	app.Use(logger.LoggerMiddleware(configs.AppTimezone))
	app.Use(metrics.Middleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(middlewares.GlobalRateLimiter())

	// HTTP timeout guard (selaras dengan statement_timeout di DB)
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartTokenCleanupCron(database.DB)
	if err != nil {
		log.Error().Err(err).Msg("scheduler cleanup token gagal start")
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		log.Info().Str("port", port).Msg("✅ Listening")
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("🛑 Shutdown...")

	if cleanup != nil {
		<-cleanup.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}
