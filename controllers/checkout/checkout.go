package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailgate/storefront-api/checkout"
	"github.com/retailgate/storefront-api/feed"
)

// POST /user/checkout
//
// Every failure in this path is surfaced to the caller; nothing is swallowed.
// The cart is left untouched on failure so the user can simply retry.
func Submit(workflow *checkout.Workflow, hub *feed.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		email, _ := c.Get("user_email")
		emailStr, _ := email.(string)

		user := &checkout.User{UID: userID, Email: emailStr}
		result, err := workflow.Submit(c.Request.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrNotAuthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, checkout.ErrUnknownRole):
				c.JSON(http.StatusForbidden, gin.H{"error": "Unknown role"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed, please try again"})
			}
			return
		}

		if hub != nil {
			hub.Broadcast(gin.H{
				"type":      recordType(result),
				"record_id": result.RecordID,
				"total":     result.Total,
			})
		}

		c.JSON(http.StatusOK, result)
	}
}

// GET /user/receipt
func LastReceipt(workflow *checkout.Workflow) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, okID := userIDVal.(string)
		if !exists || !okID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		view, ok := workflow.LastReceipt(userID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No receipt available"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func recordType(r *checkout.Result) string {
	if r.Cleared {
		return "order"
	}
	return "receipt"
}
