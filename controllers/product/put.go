package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/retailgate/storefront-api/models"
)

type UpdateProductInput struct {
	Barcode       *string  `json:"barcode"`
	EName         *string  `json:"ename"`
	ARName        *string  `json:"arname"`
	EDescription  *string  `json:"edescription"`
	ARDescription *string  `json:"ardescription"`
	SalePrice     *float64 `json:"sale_price"`
	RegularPrice  *float64 `json:"regular_price"`
	Image         *string  `json:"image"`
	Stock         *int     `json:"stock"`
	CategoryIDs   []uint   `json:"category_ids"`
}

// UpdateProduct applies a partial update; only the provided fields change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Barcode != nil {
			updates["barcode"] = *input.Barcode
		}
		if input.EName != nil {
			updates["e_name"] = *input.EName
		}
		if input.ARName != nil {
			updates["ar_name"] = *input.ARName
		}
		if input.EDescription != nil {
			updates["e_description"] = *input.EDescription
		}
		if input.ARDescription != nil {
			updates["ar_description"] = *input.ARDescription
		}
		if input.SalePrice != nil {
			updates["sale_price"] = *input.SalePrice
		}
		if input.RegularPrice != nil {
			updates["regular_price"] = *input.RegularPrice
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		if input.CategoryIDs != nil {
			var categories []models.Category
			if err := db.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
