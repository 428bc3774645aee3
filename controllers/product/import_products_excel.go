package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/abishek204/dress-shop/models"
	"github.com/abishek204/dress-shop/store"
)

// ImportProductsFromExcel bulk-loads catalog rows from an uploaded
// .xlsx file. Rows with an ID column update the existing product, the
// rest are created. Malformed rows are counted and skipped.
// Admin only. POST /api/products/import-excel
func ImportProductsFromExcel(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			category := strings.ToLower(get(4))
			images := splitList(get(5))
			sizes := splitList(get(6))
			colors := splitList(get(7))
			stock, _ := strconv.Atoi(get(8))

			if name == "" || priceErr != nil || !models.IsValidCategory(category) {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:         name,
				Description:  description,
				Price:        price,
				Category:     category,
				Images:       images,
				Sizes:        sizes,
				Colors:       colors,
				CountInStock: stock,
			}

			if idStr != "" {
				id, convErr := strconv.ParseUint(idStr, 10, 64)
				if convErr != nil {
					skippedCount++
					continue
				}
				existing, getErr := products.Get(uint(id))
				if getErr == nil {
					product.ID = existing.ID
					product.Rating = existing.Rating
					product.NumReviews = existing.NumReviews
					if err := products.Update(&product); err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			}

			if err := products.Create(&product); err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
