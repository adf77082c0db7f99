package adminControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

// GET /api/admin/stats — headline numbers for the dashboard.
func GetStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalProducts, totalOrders, pendingOrders int64

		if err := db.Model(&models.Bag{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where("status IN ?", []models.OrderStatus{models.OrderStatusInProgress, models.OrderStatusConfirmed}).
			Count(&pendingOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
			return
		}

		// Canceled orders don't count toward revenue.
		var orders []models.Order
		if err := db.Where("status <> ?", models.OrderStatusCanceled).Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
			return
		}
		totalRevenue := decimal.Zero
		for _, o := range orders {
			totalRevenue = totalRevenue.Add(o.TotalAmount)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"totalProducts": totalProducts,
				"totalOrders":   totalOrders,
				"totalRevenue":  totalRevenue,
				"pendingOrders": pendingOrders,
			},
		})
	}
}

// GET /api/admin/recent-activity — the latest orders as an activity feed.
func GetRecentActivityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Limit(10).Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recent activity"})
			return
		}

		activity := make([]gin.H, 0, len(orders))
		for _, o := range orders {
			activity = append(activity, gin.H{
				"type":        "New Order",
				"description": fmt.Sprintf("Order #%d placed by %s", o.ID, o.CustomerName),
				"created_at":  o.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": activity})
	}
}

// GET /api/admin/users
func GetAllUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "first_name", "last_name", "email", "is_admin", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
	}
}
