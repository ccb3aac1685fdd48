package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"dispatch-engine/config"
	"dispatch-engine/internal/app"
	"dispatch-engine/internal/database"
	"dispatch-engine/internal/notify"
	"dispatch-engine/internal/server"

	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DB.URL(), cfg.DB.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	validate := validator.New()

	// All sends go through the async decorator so notification latency
	// never sits on a request path.
	notifier := notify.NewAsync(notify.NewClient(cfg.Twilio, cfg.SMTP))

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
		Notifier:    notifier,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
