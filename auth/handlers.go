package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/retailgate/storefront-api/models"
	"github.com/retailgate/storefront-api/roles"
)

type SignupInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	CompanyName string `json:"company_name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func Signup(db *gorm.DB, broker *Broker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if roles.Parse(input.Role) == roles.RoleUnknown {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		profile := models.UserProfile{
			ID:           uuid.NewString(),
			Email:        input.Email,
			PasswordHash: string(hash),
			Role:         input.Role,
			CompanyName:  input.CompanyName,
			CreatedAt:    time.Now(),
		}

		if err := db.Create(&profile).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
			return
		}

		token, err := IssueJWT(profile.ID, profile.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		broker.Publish(profile.ID, true)
		c.JSON(http.StatusCreated, gin.H{"user": profile, "token": token})
	}
}

// POST /auth/login
func Login(db *gorm.DB, broker *Broker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var profile models.UserProfile
		if err := db.Where("email = ?", input.Email).First(&profile).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := IssueJWT(profile.ID, profile.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		broker.Publish(profile.ID, true)
		c.JSON(http.StatusOK, gin.H{"user": profile, "token": token})
	}
}

// POST /auth/logout
//
// Tokens are stateless; logout only publishes the auth transition so session
// state (the cart, the role watcher) is torn down.
func Logout(broker *Broker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		broker.Publish(userID, false)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
