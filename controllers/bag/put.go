package bagControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

// PUT /api/admin/bags/:id — same multipart form as create. Uploaded images
// accumulate onto the bag; the caller narrows the kept set by sending
// existingImages as a JSON array.
func UpdateBagHandler(db *gorm.DB) gin.HandlerFunc {
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

		price, err := parsePrice(c.PostForm("price"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil || quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		imageURLs := bag.ImageURLs
		if existing := c.PostForm("existingImages"); existing != "" {
			var kept models.StringList
			if err := json.Unmarshal([]byte(existing), &kept); err == nil {
				imageURLs = kept
			}
		}
		if form, err := c.MultipartForm(); err == nil && form != nil {
			newURLs, err := saveUploadedImages(c, form.File["images"])
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			imageURLs = append(imageURLs, newURLs...)
		}

		updates := models.Bag{
			NameEn:        c.PostForm("nameEn"),
			NameAr:        c.PostForm("nameAr"),
			DescriptionEn: c.PostForm("descriptionEn"),
			DescriptionAr: c.PostForm("descriptionAr"),
			Price:         price,
			Colors:        parseColors(c.PostForm("colors")),
			Quantity:      quantity,
			ImageURLs:     imageURLs,
		}

		if err := db.Model(&bag).Select("NameEn", "NameAr", "DescriptionEn", "DescriptionAr",
			"Price", "Colors", "Quantity", "ImageURLs").Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bag"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bag updated successfully"})
	}
}
