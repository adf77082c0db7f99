package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, API, and Admin
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Storefront API (session-protected)
	SetupAPIRoutes(r, db)

	// 3️⃣ Admin back office (session + is_admin)
	SetupAdminRoutes(r, db)

	r.GET("/health", HealthHandler(db))
}

// HealthHandler reports service and database-pool state.
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "error",
				"database": gin.H{"connected": false},
			})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "error",
				"database": gin.H{"connected": false},
			})
			return
		}

		stats := sqlDB.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"database": gin.H{
				"connected": true,
				"pool": gin.H{
					"open":    stats.OpenConnections,
					"in_use":  stats.InUse,
					"idle":    stats.Idle,
					"max":     stats.MaxOpenConnections,
					"waiting": stats.WaitCount,
				},
			},
		})
	}
}
