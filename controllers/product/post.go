package productController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailgate/storefront-api/models"
)

type ProductInput struct {
	Barcode       string  `json:"barcode"`
	EName         string  `json:"ename" binding:"required"`
	ARName        string  `json:"arname"`
	EDescription  string  `json:"edescription"`
	ARDescription string  `json:"ardescription"`
	SalePrice     float64 `json:"sale_price" binding:"required"`
	RegularPrice  float64 `json:"regular_price"`
	Image         string  `json:"image"`
	Stock         int     `json:"stock"`
	CategoryIDs   []uint  `json:"category_ids"`
}

// CreateProduct creates a new product attached to its categories.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var categories []models.Category
		if len(input.CategoryIDs) > 0 {
			if err := db.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
		}

		newProduct := models.Product{
			ID:            uuid.NewString(),
			Barcode:       input.Barcode,
			EName:         input.EName,
			ARName:        input.ARName,
			EDescription:  input.EDescription,
			ARDescription: input.ARDescription,
			SalePrice:     input.SalePrice,
			RegularPrice:  input.RegularPrice,
			Image:         input.Image,
			Stock:         input.Stock,
			Categories:    categories,
			CreatedAt:     time.Now(),
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
