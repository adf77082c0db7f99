package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AyaMohamed233/elreem/auth"
)

// ValidateToken establishes the current user from the session cookie, or
// from an Authorization bearer header for non-browser clients.
func ValidateToken(c *gin.Context) {
	tokenString, err := c.Cookie(auth.SessionCookie)
	if err != nil || tokenString == "" {
		header := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}
	isAdmin, _ := claims["is_admin"].(bool)

	c.Set("user_id", userID)
	c.Set("is_admin", isAdmin)

	c.Next()
}

// RequireAdmin gates the back office. Runs after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
		c.Abort()
		return
	}
	c.Next()
}
