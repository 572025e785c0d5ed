package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/savi279/clothing-api/controllers/category"
	productControllers "github.com/savi279/clothing-api/controllers/product"
)

// SetupCatalogRoutes registers the public browse endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
		products.GET("/category/:categoryId", productControllers.GetProductsByCategory(db))
		products.POST("/:id/view", productControllers.IncrementView(db))
	}

	categories := r.Group("/api/categories")
	{
		categories.GET("", categoryControllers.GetCategories(db))
		categories.GET("/:id", categoryControllers.GetCategoryByID(db))
	}
}
