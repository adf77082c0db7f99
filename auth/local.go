package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

type SignupInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signup details"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(input.Email))

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "This email is already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		user := models.User{
			ID:        uuid.NewString(),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     email,
			Password:  string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		SetSessionCookie(c, token)

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(input.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "This email is not registered"})
			return
		}

		// Google-only accounts have no local password to check.
		if user.Password == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in with Google"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password incorrect"})
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}
		SetSessionCookie(c, token)

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
	}
}

// POST /auth/logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ClearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
	}
}
