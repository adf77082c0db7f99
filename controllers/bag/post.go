package bagControllers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

const maxBagImages = 5

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// UploadDir is where bag images land; main.go serves it under /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./public/uploads"
}

// parseColors accepts either a JSON array string ("[\"Black\",\"Tan\"]") or a
// plain value, preserving the admin's display order.
func parseColors(raw string) models.StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.StringList{}
	}
	var colors models.StringList
	if err := json.Unmarshal([]byte(raw), &colors); err == nil {
		return colors
	}
	return models.StringList{raw}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, models.ValidationError("Invalid price")
	}
	return price, nil
}

func saveUploadedImages(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > maxBagImages {
		files = files[:maxBagImages]
	}

	saveDir := UploadDir()
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return nil, err
	}

	var urls []string
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExt[ext] {
			return nil, models.ValidationError("Only image files are allowed")
		}
		filename := fmt.Sprintf("images-%s%s", uuid.NewString(), ext)
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			return nil, err
		}
		urls = append(urls, "/uploads/"+filename)
	}
	return urls, nil
}

// POST /api/admin/bags — multipart form: nameEn, nameAr, descriptionEn,
// descriptionAr, price, colors, quantity, images[].
func CreateBagHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		nameEn := c.PostForm("nameEn")
		nameAr := c.PostForm("nameAr")
		priceStr := c.PostForm("price")
		colorsStr := c.PostForm("colors")
		quantityStr := c.PostForm("quantity")

		if nameEn == "" || nameAr == "" || priceStr == "" || colorsStr == "" || quantityStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be provided"})
			return
		}

		price, err := parsePrice(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		var imageURLs []string
		if form, err := c.MultipartForm(); err == nil && form != nil {
			imageURLs, err = saveUploadedImages(c, form.File["images"])
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		bag := models.Bag{
			NameEn:        nameEn,
			NameAr:        nameAr,
			DescriptionEn: c.PostForm("descriptionEn"),
			DescriptionAr: c.PostForm("descriptionAr"),
			Price:         price,
			Colors:        parseColors(colorsStr),
			Quantity:      quantity,
			ImageURLs:     models.StringList(imageURLs),
		}

		if err := db.Create(&bag).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add bag"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bag added successfully", "bag": bag})
	}
}
