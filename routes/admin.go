package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/AyaMohamed233/elreem/controllers/admin"
	bagControllers "github.com/AyaMohamed233/elreem/controllers/bag"
	orderControllers "github.com/AyaMohamed233/elreem/controllers/order"
	reviewControllers "github.com/AyaMohamed233/elreem/controllers/review"
	"github.com/AyaMohamed233/elreem/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires a
// session whose user carries the is_admin flag.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Inventory Management ───────────
		bagAdmin := adminGroup.Group("/bags")
		{
			bagAdmin.GET("", bagControllers.GetAllBagsHandler(db))
			bagAdmin.POST("", bagControllers.CreateBagHandler(db))
			bagAdmin.PUT("/:id", bagControllers.UpdateBagHandler(db))
			bagAdmin.DELETE("/:id", bagControllers.DeleteBagHandler(db))
			bagAdmin.GET("/export-excel", bagControllers.ExportBagsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		// ─────────── Review Management ───────────
		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", reviewControllers.GetAllReviewsHandler(db))
			reviewAdmin.DELETE("/:id", reviewControllers.DeleteReviewHandler(db))
		}

		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminControllers.GetStatsHandler(db))
		adminGroup.GET("/recent-activity", adminControllers.GetRecentActivityHandler(db))
		adminGroup.GET("/users", adminControllers.GetAllUsersHandler(db))
	}
}
