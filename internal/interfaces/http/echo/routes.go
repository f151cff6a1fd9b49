package echo

import e "github.com/labstack/echo/v4"

// RegisterRoutes wires the SCIM surface, the bulk import endpoints and the
// admin API onto the server. The adminAuth middleware protects everything
// except the public health check.
func RegisterRoutes(
	server *e.Echo,
	userHandler *UserHandler,
	importHandler *ImportHandler,
	realmHandler *RealmHandler,
	adminHandler *AdminHandler,
	adminAuth e.MiddlewareFunc,
) {
	server.GET("/admin/health", adminHandler.Health)

	scim := server.Group("/scim/v2/Realms/:realm_id", adminAuth)
	scim.POST("/Users", userHandler.CreateUser)
	scim.GET("/Users", userHandler.ListUsers)
	scim.GET("/Users/:user_id", userHandler.GetUserByID)
	scim.PUT("/Users/:user_id", userHandler.UpdateUser)
	scim.DELETE("/Users/:user_id", userHandler.DeleteUser)
	scim.GET("/Users/by-username/:user_name", userHandler.GetUserByUserName)
	scim.GET("/Users/by-email", userHandler.GetUserByEmail)

	scim.POST("/Users/bulk-import", importHandler.BulkImport)
	scim.GET("/Users/bulk-import/template", importHandler.Template)
	scim.GET("/Users/bulk-import/status", importHandler.Status)

	admin := server.Group("/admin", adminAuth)
	admin.POST("/realms", realmHandler.CreateRealm)
	admin.GET("/realms", realmHandler.ListRealms)
	admin.GET("/realms/:realm_id", realmHandler.GetRealm)
	admin.POST("/users", adminHandler.CreateAdmin)
}
