package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/retailgate/storefront-api/controllers/order"
	"github.com/retailgate/storefront-api/middleware"
)

// SetupSuperadminRoutes registers all "/superadmin/*" endpoints. Requires a
// valid session and a resolved superadmin role.
func SetupSuperadminRoutes(r *gin.Engine, deps *Deps) {
	group := r.Group("/superadmin")
	group.Use(middleware.RequireAuth, middleware.RequireSuperadmin(deps.Roles))
	{
		group.GET("/orders", orderControllers.GetAllOrders(deps.DB))
		group.GET("/orders/:orderID", orderControllers.GetOrderByID(deps.DB))
		group.GET("/orders/user/:userID", orderControllers.GetUserOrders(deps.DB))
		group.GET("/receipts", orderControllers.GetAllReceipts(deps.DB))
	}
}
