package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/config"
	activityControllers "github.com/savi279/clothing-api/controllers/activity"
	cartControllers "github.com/savi279/clothing-api/controllers/cart"
	colorAnalysisControllers "github.com/savi279/clothing-api/controllers/coloranalysis"
	contactControllers "github.com/savi279/clothing-api/controllers/contact"
	favoritesControllers "github.com/savi279/clothing-api/controllers/favorites"
	orderControllers "github.com/savi279/clothing-api/controllers/order"
	paymentControllers "github.com/savi279/clothing-api/controllers/payment"
	productControllers "github.com/savi279/clothing-api/controllers/product"
	supportControllers "github.com/savi279/clothing-api/controllers/support"
	"github.com/savi279/clothing-api/mailer"
	"github.com/savi279/clothing-api/middleware"
)

// SetupUserRoutes registers the JWT-protected customer endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sender mailer.Sender, payClient *paymentControllers.Client) {
	// Contact is public.
	r.POST("/api/contact", contactControllers.SendMessage(sender, cfg.AdminEmail))

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(cfg.JWT.Secret))
	{
		cart := api.Group("/cart")
		{
			cart.GET("", cartControllers.GetCart(db))
			cart.POST("", cartControllers.AddToCart(db))
			cart.PUT("/:productId/:size", cartControllers.UpdateCartItem(db))
			cart.DELETE("/:productId/:size", cartControllers.RemoveFromCart(db))
		}

		favorites := api.Group("/favorites")
		{
			favorites.GET("", favoritesControllers.GetFavorites(db))
			favorites.POST("/:productId", favoritesControllers.ToggleFavorite(db))
			favorites.DELETE("/:productId", favoritesControllers.RemoveFavorite(db))
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderControllers.CreateOrder(db))
			orders.GET("/myorders", orderControllers.GetMyOrders(db))
			orders.GET("/:id", orderControllers.GetOrderByID(db))
			orders.PUT("/:id/pay", orderControllers.PayOrder(db))
		}

		payment := api.Group("/payment")
		{
			payment.POST("/order", paymentControllers.CreateGatewayOrder(payClient))
			payment.POST("/verify", paymentControllers.VerifyPayment(db, cfg.Razorpay.KeySecret))
		}

		api.POST("/products/:id/review", productControllers.SubmitReview(db))

		api.POST("/color-analysis", colorAnalysisControllers.Analyze(db))
		api.GET("/color-analysis", colorAnalysisControllers.GetProfile(db))

		api.POST("/support", supportControllers.CreateTicket(db))
		api.GET("/support/my-tickets", supportControllers.GetMyTickets(db))
		api.POST("/support/:id/comment", supportControllers.AddComment(db))

		api.POST("/user-activity", activityControllers.LogActivity(db))
	}
}
