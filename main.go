package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"weighroom-backend/config"
	"weighroom-backend/database"
	"weighroom-backend/logger"
	"weighroom-backend/mail"
	"weighroom-backend/metrics"
	"weighroom-backend/routes"
)

func main() {
	// Load env vars from .env file
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing with system environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.MigratePostgres(db); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	var mailer mail.Mailer = mail.NewLogMailer(zlog)
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewSendGridMailer(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.ContactEmail)
	} else {
		zlog.Warn("SENDGRID_API_KEY not set, contact messages will only be logged")
	}

	app := routes.NewApp(routes.Dependencies{
		DB:      db,
		Config:  cfg,
		Logger:  zlog,
		Metrics: metrics.New(),
		Mailer:  mailer,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	zlog.Info("Server running", zap.String("addr", addr), zap.String("environment", cfg.Environment))
	if err := app.Listen(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
