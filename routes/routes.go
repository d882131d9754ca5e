package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/retailgate/storefront-api/auth"
	"github.com/retailgate/storefront-api/cart"
	"github.com/retailgate/storefront-api/checkout"
	"github.com/retailgate/storefront-api/feed"
	"github.com/retailgate/storefront-api/roles"
)

// Deps carries the explicit state containers every route group wires against.
// Nothing here is an ambient singleton; main constructs one Deps and passes
// it down.
type Deps struct {
	DB       *gorm.DB
	Carts    *cart.Store
	Checkout *checkout.Workflow
	Roles    *roles.Registry
	Broker   *auth.Broker
	Feed     *feed.Hub
}

// SetupRoutes is the single entry-point that wires up Auth, User, Admin, and
// Superadmin route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)

	// Superadmin routes (JWT + role guard)
	SetupSuperadminRoutes(r, deps)

	// Live order feed
	r.GET("/feed/orders", deps.Feed.Handler)
}
