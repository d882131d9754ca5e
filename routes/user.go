package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/retailgate/storefront-api/controllers/cart"
	checkoutControllers "github.com/retailgate/storefront-api/controllers/checkout"
	productController "github.com/retailgate/storefront-api/controllers/product"
	userControllers "github.com/retailgate/storefront-api/controllers/user"
	"github.com/retailgate/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps *Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetProfile(deps.DB))
		userGroup.PUT("/", userControllers.UpdateProfile(deps.DB))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Carts))
			cartGroup.POST("/", cartControllers.AddCartItem(deps.DB, deps.Carts))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItem(deps.Carts))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Carts))
		}

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", checkoutControllers.Submit(deps.Checkout, deps.Feed))
		userGroup.GET("/receipt", checkoutControllers.LastReceipt(deps.Checkout))

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productController.GetProducts(deps.DB))
		userGroup.GET("/products/:id", productController.GetProductByID(deps.DB))

		// ──────────────── Browse Categories + Products ────────────────
		userGroup.GET("/categories", productController.GetAllCategoriesWithProducts(deps.DB))
	}
}
