package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/abishek204/dress-shop/store"
)

var excelHeaders = []string{
	"ID", "Name", "Description", "Price", "Category",
	"Images", "Sizes", "Colors", "CountInStock", "Rating", "NumReviews",
}

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
// Admin only. GET /api/products/export-excel
func ExportProductsToExcel(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List("")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range all {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(strings.Join(p.Images, "|"))
			row.AddCell().SetValue(strings.Join(p.Sizes, "|"))
			row.AddCell().SetValue(strings.Join(p.Colors, "|"))
			row.AddCell().SetValue(p.CountInStock)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.NumReviews)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
