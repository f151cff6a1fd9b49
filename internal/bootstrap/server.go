package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adminapp "github.com/mohammadpnp/scim-provision/internal/application/admin"
	"github.com/mohammadpnp/scim-provision/internal/application/bulkimport"
	realmapp "github.com/mohammadpnp/scim-provision/internal/application/realm"
	userapp "github.com/mohammadpnp/scim-provision/internal/application/user"
	"github.com/mohammadpnp/scim-provision/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/scim-provision/internal/interfaces/http/echo"
)

// NewHTTPServer wires repositories, use cases and handlers onto a single
// echo instance. User record persistence runs on the pgx pool; realms and
// admin accounts go through gorm.
func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, importCfg bulkimport.Config, log *zap.Logger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))

	userRepo := repository.NewUserRepository(pool)
	realmRepo := repository.NewRealmRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	userHandler := httpecho.NewUserHandler(
		userapp.NewCreateUser(userRepo, realmRepo),
		userapp.NewGetUserByID(userRepo),
		userapp.NewGetUserByUserName(userRepo),
		userapp.NewGetUserByEmail(userRepo),
		userapp.NewListUsers(userRepo),
		userapp.NewUpdateUser(userRepo),
		userapp.NewDeleteUser(userRepo),
	)

	importService := bulkimport.NewService(userRepo, realmRepo, importCfg, log)
	importHandler := httpecho.NewImportHandler(importService)

	realmHandler := httpecho.NewRealmHandler(
		realmapp.NewCreateRealm(realmRepo),
		realmapp.NewGetRealm(realmRepo),
		realmapp.NewListRealms(realmRepo),
	)

	adminHandler := httpecho.NewAdminHandler(adminapp.NewCreateAdmin(adminRepo))
	adminAuth := httpecho.BasicAuth(adminapp.NewAuthenticate(adminRepo))

	httpecho.RegisterRoutes(server, userHandler, importHandler, realmHandler, adminHandler, adminAuth)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
