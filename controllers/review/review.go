package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

type SubmitReviewInput struct {
	BagID      uint   `json:"bagId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"reviewText"`
}

// -------- Core Logic --------

// SubmitReview saves the caller's review of a bag: one review per
// (user, bag), a second submission overwrites the first. The caller must
// have a Confirmed or Delivered order containing the bag.
func SubmitReview(db *gorm.DB, userID string, input SubmitReviewInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return models.ValidationError("Valid bag ID and rating (1-5) are required")
	}

	var bag models.Bag
	if err := db.First(&bag, "id = ?", input.BagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	var purchased int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.bag_id = ? AND orders.status IN ?",
			userID, input.BagID,
			[]models.OrderStatus{models.OrderStatusConfirmed, models.OrderStatusDelivered}).
		Count(&purchased).Error
	if err != nil {
		return err
	}
	if purchased == 0 {
		return models.ValidationError("You can only review bags you have ordered")
	}

	var review models.Review
	err = db.Where("user_id = ? AND bag_id = ?", userID, input.BagID).First(&review).Error
	switch {
	case err == nil:
		return db.Model(&review).Updates(map[string]interface{}{
			"rating":      input.Rating,
			"review_text": input.ReviewText,
			"updated_at":  time.Now(),
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(&models.Review{
			UserID:     userID,
			BagID:      input.BagID,
			Rating:     input.Rating,
			ReviewText: input.ReviewText,
		}).Error
	default:
		return err
	}
}

// DeleteReview hard-deletes a review by id.
func DeleteReview(db *gorm.DB, reviewID uint) error {
	res := db.Delete(&models.Review{}, reviewID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// -------- Handlers --------

// POST /api/reviews
func SubmitReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input SubmitReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid bag ID and rating (1-5) are required"})
			return
		}

		if err := SubmitReview(db, userID, input); err != nil {
			var validationErr models.ValidationError
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Bag not found"})
			case errors.As(err, &validationErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review saved successfully"})
	}
}

// GET /api/reviews/bag/:bagId
func GetBagReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bagID, err := strconv.ParseUint(c.Param("bagId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bag ID"})
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").
			Where("bag_id = ?", bagID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
	}
}

// GET /api/reviews/user — the caller's reviews with the reviewed bags.
func GetUserReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var reviews []models.Review
		if err := db.Preload("Bag").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
	}
}

// GET /api/reviews/reviewable — bags the caller ordered but has not reviewed.
func GetReviewableBagsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var bags []models.Bag
		err := db.Distinct("bags.*").
			Joins("JOIN order_items ON order_items.bag_id = bags.id").
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.user_id = ? AND orders.status IN ?", userID,
				[]models.OrderStatus{models.OrderStatusConfirmed, models.OrderStatusDelivered}).
			Where("bags.id NOT IN (?)",
				db.Model(&models.Review{}).Select("bag_id").Where("user_id = ?", userID)).
			Order("bags.name_en").
			Find(&bags).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviewable bags"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": bags})
	}
}

// GET /api/admin/reviews
func GetAllReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Preload("User").Preload("Bag").
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
	}
}

// DELETE /api/admin/reviews/:id
func DeleteReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		if err := DeleteReview(db, uint(id)); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted successfully"})
	}
}
