package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/auth"
)

// SetupAuthRoutes registers signup, login, Google sign-in, and logout.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignupHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/google", auth.GoogleLoginHandler(db))
		authGroup.POST("/logout", auth.LogoutHandler())
	}
}
