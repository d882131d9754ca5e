package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/retailgate/storefront-api/cart"
	"github.com/retailgate/storefront-api/models"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	// Quantity may be zero or negative; a negative value adjusts an existing
	// line down.
	Quantity int `json:"quantity"`
}

// POST /user/cart
func AddCartItem(db *gorm.DB, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		carts.Add(userID, cart.Product{
			ID:      product.ID,
			Barcode: product.Barcode,
			Name:    product.EName,
			Price:   product.SalePrice,
		}, input.Quantity)

		c.JSON(http.StatusOK, carts.Get(userID))
	}
}

// DELETE /user/cart/:product_id
func RemoveCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		carts.Remove(userID, c.Param("product_id"))
		c.JSON(http.StatusOK, carts.Get(userID))
	}
}

// DELETE /user/cart
func ClearUserCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		carts.Clear(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetUserCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, carts.Get(userID))
	}
}
