package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/config"
	authControllers "github.com/savi279/clothing-api/controllers/auth"
	"github.com/savi279/clothing-api/mailer"
	"github.com/savi279/clothing-api/middleware"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sender mailer.Sender) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/check-user", authControllers.CheckUser(db, sender))
		authGroup.POST("/verify-otp", authControllers.VerifyOtp(db))
		authGroup.POST("/register", authControllers.Register(db, cfg.JWT.Secret))
		authGroup.POST("/login", authControllers.Login(db, cfg.JWT.Secret))

		profile := authGroup.Group("/user")
		profile.Use(middleware.RequireAuth(cfg.JWT.Secret))
		{
			profile.GET("", authControllers.GetProfile(db))
			profile.PUT("", authControllers.UpdateProfile(db))
		}
	}
}
