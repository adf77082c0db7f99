package bagControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

// GET /api/admin/bags/export-excel — inventory snapshot for the back office.
func ExportBagsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bags []models.Bag
		if err := db.Order("created_at").Find(&bags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bags"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Bags")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameEn", "NameAr", "DescriptionEn", "DescriptionAr",
			"Price", "Colors", "Quantity", "ImageURLs", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, b := range bags {
			row := sheet.AddRow()
			row.AddCell().SetValue(b.ID)
			row.AddCell().SetValue(b.NameEn)
			row.AddCell().SetValue(b.NameAr)
			row.AddCell().SetValue(b.DescriptionEn)
			row.AddCell().SetValue(b.DescriptionAr)
			row.AddCell().SetValue(b.Price.StringFixed(2))
			row.AddCell().SetValue(strings.Join(b.Colors, ", "))
			row.AddCell().SetValue(b.Quantity)
			row.AddCell().SetValue(strings.Join(b.ImageURLs, ", "))
			row.AddCell().SetValue(b.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(b.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=bags.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
