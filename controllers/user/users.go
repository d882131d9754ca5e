package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/retailgate/storefront-api/models"
)

type UpdateProfileInput struct {
	CompanyName *string `json:"company_name"`
}

// GET /user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var profile models.UserProfile

		if err := db.First(&profile, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// GET /admin/profiles
func GetAllProfiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profiles []models.UserProfile
		if err := db.
			Select("id", "email", "role", "company_name", "created_at").
			Order("created_at desc").
			Find(&profiles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
			return
		}

		c.JSON(http.StatusOK, profiles)
	}
}

// PUT /user
//
// Only the company name is writable here; the role field is never mutated
// through the storefront surface.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var profile models.UserProfile

		if err := db.First(&profile, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.CompanyName != nil {
			if err := db.Model(&profile).Update("company_name", *input.CompanyName).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}

		c.JSON(http.StatusOK, profile)
	}
}
