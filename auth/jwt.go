package auth

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AyaMohamed233/elreem/models"
)

const (
	// SessionCookie carries the signed session token; the storefront scripts
	// never read it, the browser just sends it back.
	SessionCookie = "session"

	sessionTTL = 7 * 24 * time.Hour
)

// IssueToken signs a session JWT for the user.
func IssueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// SetSessionCookie installs the token as an http-only cookie.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie logs the browser out.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
