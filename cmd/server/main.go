package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/metonline/hesap-paylas/internal/auth"
	"github.com/metonline/hesap-paylas/internal/notify"
	"github.com/metonline/hesap-paylas/internal/server"
	"github.com/metonline/hesap-paylas/internal/service"
	"github.com/metonline/hesap-paylas/internal/storage/sqlite"
	"github.com/metonline/hesap-paylas/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	logging.Setup()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	dbPath := getEnv("DB_PATH", "./data/hesap-paylas.db")
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	jwtManager := auth.NewJWTManager(jwtSecret, 7*24*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(
		authenticator,
		jwtManager,
		store,
		service.NewGroupService(store),
		service.NewOrderService(store),
		service.NewSettlementService(store, notify.LogNotifier{}),
	)

	addr := fmt.Sprintf(":%s", getEnv("PORT", "8080"))
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
