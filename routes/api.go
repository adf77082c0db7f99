package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bagControllers "github.com/AyaMohamed233/elreem/controllers/bag"
	cartControllers "github.com/AyaMohamed233/elreem/controllers/cart"
	orderControllers "github.com/AyaMohamed233/elreem/controllers/order"
	reviewControllers "github.com/AyaMohamed233/elreem/controllers/review"
	userControllers "github.com/AyaMohamed233/elreem/controllers/user"
	"github.com/AyaMohamed233/elreem/middleware"
)

// SetupAPIRoutes registers all "/api/*" endpoints the storefront scripts
// call. Everything here requires an established session.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		api.POST("/cart/add", cartControllers.AddToCartHandler(db))
		api.PUT("/cart/update/:itemId", cartControllers.UpdateCartItemHandler(db))
		api.DELETE("/cart/remove/:itemId", cartControllers.RemoveCartItemHandler(db))
		api.GET("/cart", cartControllers.GetCartHandler(db))
		api.GET("/cart/count", cartControllers.CartCountHandler(db))

		// ──────────────── Checkout & Orders ────────────────
		api.POST("/checkout", orderControllers.CheckoutHandler(db))
		api.POST("/order/cancel/:orderId", orderControllers.CancelOrderHandler(db))
		api.GET("/orders", orderControllers.GetUserOrdersHandler(db))

		// ──────────────── Catalog ────────────────
		api.GET("/bags", bagControllers.GetBagsHandler(db))
		api.GET("/bags/:id", bagControllers.GetBagByIDHandler(db))

		// ──────────────── Reviews ────────────────
		api.POST("/reviews", reviewControllers.SubmitReviewHandler(db))
		api.GET("/reviews/bag/:bagId", reviewControllers.GetBagReviewsHandler(db))
		api.GET("/reviews/user", reviewControllers.GetUserReviewsHandler(db))
		api.GET("/reviews/reviewable", reviewControllers.GetReviewableBagsHandler(db))

		// ──────────────── Profile ────────────────
		api.GET("/profile", userControllers.GetUser(db))
		api.PUT("/profile", userControllers.UpdateUser(db))
	}
}
