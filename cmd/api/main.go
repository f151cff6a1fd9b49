package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminapp "github.com/mohammadpnp/scim-provision/internal/application/admin"
	"github.com/mohammadpnp/scim-provision/internal/application/bulkimport"
	"github.com/mohammadpnp/scim-provision/internal/bootstrap"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/db/models"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/repository"
	"github.com/mohammadpnp/scim-provision/internal/logging"
)

func main() {
	_ = godotenv.Load()

	logger, err := logging.New(getEnv("APP_ENV", "development"))
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	port := getEnv("PORT", "8080")

	// TranslateError turns driver unique violations into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Realm{}, &models.AdminUser{}, &models.SCIMUser{}); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		logger.Fatal("failed to create pgx pool", zap.Error(err))
	}
	defer pool.Close()

	seedBootstrapAdmin(db, logger)

	importCfg := bulkimport.Config{
		MaxFileBytes: int64(parseIntEnv("IMPORT_MAX_FILE_BYTES", 5*1024*1024)),
		MaxRows:      parseIntEnv("IMPORT_MAX_ROWS", 1000),
	}

	server := bootstrap.NewHTTPServer(db, pool, importCfg, logger)

	go func() {
		if err := server.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("graceful shutdown failed", zap.Error(err))
	}
}

// seedBootstrapAdmin creates the first admin account from the environment
// so a fresh deployment can authenticate. Skipped when the variables are
// absent or the username already exists.
func seedBootstrapAdmin(db *gorm.DB, logger *zap.Logger) {
	username := os.Getenv("BOOTSTRAP_ADMIN_USERNAME")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	create := adminapp.NewCreateAdmin(repository.NewAdminRepository(db))
	_, err := create.Execute(context.Background(), adminapp.CreateAdminInput{
		Username: username,
		Password: password,
		Email:    getEnv("BOOTSTRAP_ADMIN_EMAIL", username+"@localhost"),
	})
	switch {
	case err == nil:
		logger.Info("bootstrap admin created", zap.String("username", username))
	case errors.Is(err, adminapp.ErrDuplicateAdmin):
		// already seeded
	default:
		logger.Fatal("failed to seed bootstrap admin", zap.Error(err))
	}
}

func parseIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
