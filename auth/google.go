package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

type googleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// POST /auth/google — the client obtains a Google ID token and posts it here.
// The token audience is checked against GOOGLE_CLIENT_ID. A user signing in
// with an email that already has a local account gets the Google identity
// linked onto that account.
func GoogleLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), input.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		googleID := payload.Subject
		email, _ := payload.Claims["email"].(string)
		firstName, _ := payload.Claims["given_name"].(string)
		lastName, _ := payload.Claims["family_name"].(string)
		email = strings.ToLower(email)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Google account has no email"})
			return
		}

		var user models.User
		err = db.Where("google_id = ?", googleID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First Google sign-in: link to an existing email or create fresh.
			err = db.Where("email = ?", email).First(&user).Error
			switch {
			case err == nil:
				if err := db.Model(&user).Update("google_id", googleID).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
					return
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				user = models.User{
					ID:        uuid.NewString(),
					FirstName: firstName,
					LastName:  lastName,
					Email:     email,
					GoogleID:  googleID,
				}
				if err := db.Create(&user).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
					return
				}
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}
		SetSessionCookie(c, token)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "user": user, "token": token})
	}
}
