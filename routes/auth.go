package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/retailgate/storefront-api/auth"
	"github.com/retailgate/storefront-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps *Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup(deps.DB, deps.Broker))
		authGroup.POST("/login", auth.Login(deps.DB, deps.Broker))
		authGroup.POST("/logout", middleware.RequireAuth, auth.Logout(deps.Broker))
	}
}
