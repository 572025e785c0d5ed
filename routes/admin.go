package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/config"
	activityControllers "github.com/savi279/clothing-api/controllers/activity"
	analyticsControllers "github.com/savi279/clothing-api/controllers/analytics"
	categoryControllers "github.com/savi279/clothing-api/controllers/category"
	orderControllers "github.com/savi279/clothing-api/controllers/order"
	productControllers "github.com/savi279/clothing-api/controllers/product"
	supportControllers "github.com/savi279/clothing-api/controllers/support"
	"github.com/savi279/clothing-api/middleware"
)

// SetupAdminRoutes registers the admin-only endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := r.Group("/api")
	admin.Use(middleware.RequireAuth(cfg.JWT.Secret), middleware.RequireAdmin())
	{
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))

		admin.POST("/categories", categoryControllers.CreateCategory(db))
		admin.PUT("/categories/:id", categoryControllers.UpdateCategory(db))
		admin.DELETE("/categories/:id", categoryControllers.DeleteCategory(db))

		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.GET("/orders/live", orderControllers.StreamOrders())
		admin.PUT("/orders/:id/deliver", orderControllers.DeliverOrder(db))

		admin.GET("/support", supportControllers.GetAllTickets(db))
		admin.PUT("/support/:id", supportControllers.UpdateTicket(db))

		admin.GET("/user-activity", activityControllers.GetAllActivities(db))
		admin.GET("/user-activity/stats", activityControllers.GetActivityStats(db))
		admin.GET("/user-activity/user/:userId", activityControllers.GetUserActivities(db))

		admin.GET("/analytics/dashboard", analyticsControllers.GetDashboard(db))
	}
}
