/*
main.go - Application entry point

PURPOSE:
  Starts the production engine host: loads configuration, opens the
  SQLite store, wires the API handler, and serves HTTP with graceful
  shutdown.

ENVIRONMENT (a .env file is loaded if present):
  PORT       HTTP server port (default: 8080)
  DB_PATH    SQLite database path (default: production.db;
             use ":memory:" for an in-memory database)
  SEED_DEMO  "1" resets the database and loads the demo dataset
  LOG_LEVEL  logrus level (default: info)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for
  active requests, close the database, exit.

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/warp/production-engine/api"
	"github.com/warp/production-engine/store/sqlite"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	dbPath := envOr("DB_PATH", "production.db")
	store, err := sqlite.New(dbPath)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer store.Close()

	if os.Getenv("SEED_DEMO") == "1" {
		ctx := context.Background()
		if err := store.Reset(ctx); err != nil {
			log.WithError(err).Fatal("failed to reset database")
		}
		if err := api.Seed(ctx, store); err != nil {
			log.WithError(err).Fatal("failed to seed demo data")
		}
		log.Info("demo dataset loaded")
	}

	handler := api.NewHandler(store, log)
	router := api.NewRouter(handler)

	port := envOr("PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"port": port, "db": dbPath}).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
	log.Info("server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
