package routes

import (
	"github.com/devranjit/salontraining-server-sub001/internal/handler"
	"github.com/devranjit/salontraining-server-sub001/internal/middleware"
	"github.com/devranjit/salontraining-server-sub001/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router wires up
type Handlers struct {
	RecycleBin  *handler.RecycleBinHandler
	Versions    *handler.VersionHandler
	Entities    *handler.EntityHandler
	Maintenance *handler.MaintenanceHandler
}

// Setup configures the admin and maintenance API routes
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, maintenanceSecret string) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuth(jwtManager), middleware.RequireAdmin())

	// Recycle bin
	bin := admin.Group("/recycle-bin")
	bin.GET("", h.RecycleBin.List)
	bin.GET("/entity-types", h.RecycleBin.EntityTypes)
	bin.POST("/bulk-delete", h.RecycleBin.BulkPurge)
	bin.POST("/:id/restore", h.RecycleBin.Restore)
	bin.DELETE("/:id", h.RecycleBin.Purge)

	// Version history
	versions := admin.Group("/versions")
	versions.GET("/recent", h.Versions.ListRecent)
	versions.GET("/stats", h.Versions.Stats)
	versions.GET("/compare", h.Versions.Compare)
	versions.GET("/item/:versionId", h.Versions.Get)
	versions.POST("/item/:versionId/restore", h.Versions.Restore)
	versions.GET("/:type/:id", h.Versions.ListForEntity)

	// Generic entity administration
	entities := admin.Group("/entities")
	entities.GET("/:type/:id", h.Entities.Get)
	entities.PUT("/:type/:id", h.Entities.Update)
	entities.POST("/:type/:id/status", h.Entities.ChangeStatus)
	entities.DELETE("/:type/:id", h.Entities.Delete)

	// Maintenance triggers, guarded by shared secret instead of a session
	maintenance := router.Group("/api/maintenance")
	maintenance.Use(middleware.MaintenanceKey(maintenanceSecret))
	maintenance.POST("/recycle-bin/sweep", h.Maintenance.Sweep)
}
