package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/B7A9F/exercices-api/internal/auth"
	"github.com/B7A9F/exercices-api/internal/config"
	appdb "github.com/B7A9F/exercices-api/internal/db"
	"github.com/B7A9F/exercices-api/internal/exercices"
	"github.com/B7A9F/exercices-api/internal/handlers"
	"github.com/B7A9F/exercices-api/internal/middleware"
	"github.com/B7A9F/exercices-api/internal/ninjas"
	"github.com/B7A9F/exercices-api/internal/routes"
	"github.com/B7A9F/exercices-api/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := appdb.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	for i := 0; ; i++ {
		if err := appdb.EnsureSchema(db); err != nil {
			if i >= 5 {
				log.Fatalf("ensure schema error: %v", err)
			}
			log.Printf("ensure schema error: %v (retrying in 5s)", err)
			time.Sleep(5 * time.Second)
			continue
		}
		break
	}

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	catalog := ninjas.NewClient(cfg.CatalogURL, cfg.CatalogAPIKey)
	svc := exercices.NewService(store.NewMySQLExerciceStore(db), catalog)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(logger.New())
	app.Use(middleware.DashboardLogger())
	app.Use(middleware.RateLimiter())

	routes.Register(app, routes.Deps{
		Users:     handlers.NewUserHandler(store.NewMySQLUserStore(db), issuer, cfg.BcryptCost),
		Exercices: handlers.NewExerciceHandler(svc),
		Health:    handlers.NewHealthHandler(db, cfg.CatalogAPIKey),
		Issuer:    issuer,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
		db.Close()
		os.Exit(0)
	}()

	log.Printf("server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
