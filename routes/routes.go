package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/config"
	paymentControllers "github.com/savi279/clothing-api/controllers/payment"
	"github.com/savi279/clothing-api/mailer"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sender mailer.Sender) {
	payClient := paymentControllers.NewClient(cfg.Razorpay)

	// Public auth + catalog routes (no middleware)
	SetupAuthRoutes(r, db, cfg, sender)
	SetupCatalogRoutes(r, db)

	// Customer routes (JWT-protected)
	SetupUserRoutes(r, db, cfg, sender, payClient)

	// Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, db, cfg)
}
