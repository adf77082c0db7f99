package bagControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

// DeleteBag removes a bag from the catalog. A bag that appears on any order
// line is protected so order history keeps its references.
func DeleteBag(db *gorm.DB, bagID uint) error {
	var bag models.Bag
	if err := db.First(&bag, "id = ?", bagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	var referenced int64
	if err := db.Model(&models.OrderItem{}).Where("bag_id = ?", bagID).Count(&referenced).Error; err != nil {
		return err
	}
	if referenced > 0 {
		return models.ErrBagReferenced
	}

	return db.Delete(&bag).Error
}

// DELETE /api/admin/bags/:id
func DeleteBagHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bag ID"})
			return
		}

		if err := DeleteBag(db, uint(id)); err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Bag not found"})
			case errors.Is(err, models.ErrBagReferenced):
				c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete bag that has been ordered"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bag"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bag deleted successfully"})
	}
}
