package bagControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

// GET /api/bags — the storefront listing: in-stock bags, newest first.
func GetBagsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bags []models.Bag
		if err := db.Where("quantity > 0").Order("created_at DESC").Find(&bags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bags"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "bags": bags})
	}
}

// GET /api/bags/:id — bag detail with its rating summary, computed on read.
func GetBagByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bag ID"})
			return
		}

		var bag models.Bag
		if err := db.First(&bag, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bag not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bag"})
			}
			return
		}

		var summary struct {
			AvgRating   float64 `json:"avg_rating"`
			ReviewCount int64   `json:"review_count"`
		}
		if err := db.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
			Where("bag_id = ?", bag.ID).
			Scan(&summary).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bag"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"bag":          bag,
			"avg_rating":   summary.AvgRating,
			"review_count": summary.ReviewCount,
		})
	}
}

// GET /api/admin/bags — inventory view, out-of-stock included.
func GetAllBagsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bags []models.Bag
		if err := db.Order("created_at DESC").Find(&bags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bags"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "bags": bags})
	}
}
