package routes

import (
	"github.com/gin-gonic/gin"

	productController "github.com/retailgate/storefront-api/controllers/product"
	userControllers "github.com/retailgate/storefront-api/controllers/user"
	"github.com/retailgate/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Account Management ───────────
		adminGroup.GET("/profiles", userControllers.GetAllProfiles(deps.DB))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productController.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productController.UpdateProduct(deps.DB))
			productAdmin.GET("", productController.GetProducts(deps.DB))
			productAdmin.DELETE("/:id", productController.DeleteProduct(deps.DB))
			productAdmin.POST("/import-excel", productController.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productController.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productController.CreateCategory(deps.DB))
			categoryAdmin.PUT("/:id", productController.UpdateCategory(deps.DB))
			categoryAdmin.GET("", productController.GetAllCategories(deps.DB))
			categoryAdmin.DELETE("/:id", productController.DeleteCategory(deps.DB))
		}
	}
}
