package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailgate/storefront-api/roles"
)

// RoleChecker reports the current role resolution for a user id.
type RoleChecker interface {
	Check(ctx context.Context, uid string) roles.Resolution
}

// RequireSuperadmin gates a route group to resolved superadmins. While the
// role lookup is still loading it answers with a wait payload and never
// redirects; once resolved, anyone who is absent or not superadmin is sent
// back to the home route.
func RequireSuperadmin(checker RoleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		uidVal, exists := c.Get("user_id")
		uid, _ := uidVal.(string)
		if !exists || uid == "" {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		res := checker.Check(c.Request.Context(), uid)
		if res.State == roles.StateLoading {
			c.JSON(http.StatusAccepted, gin.H{"status": "loading"})
			c.Abort()
			return
		}
		if res.Role != roles.RoleSuperadmin {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
