package analyticsControllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/models"
)

type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// GET /api/analytics/dashboard (admin)
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		var totalUsers, totalProducts int64
		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var totalSales float64
		salesByDay := make(map[string]float64)
		productSales := make(map[string]int)
		for _, order := range orders {
			totalSales += order.TotalPrice
			day := order.CreatedAt.Format("2006-01-02")
			salesByDay[day] += order.TotalPrice
			for _, item := range order.Items {
				productSales[item.Name] += item.Quantity
			}
		}

		top := make([]TopProduct, 0, len(productSales))
		for name, qty := range productSales {
			top = append(top, TopProduct{Name: name, Quantity: qty})
		}
		sort.Slice(top, func(i, j int) bool {
			if top[i].Quantity != top[j].Quantity {
				return top[i].Quantity > top[j].Quantity
			}
			return top[i].Name < top[j].Name
		})
		if len(top) > 5 {
			top = top[:5]
		}

		c.JSON(http.StatusOK, gin.H{
			"totalSales":         totalSales,
			"totalOrders":        len(orders),
			"totalUsers":         totalUsers,
			"totalProducts":      totalProducts,
			"salesData":          salesByDay,
			"topSellingProducts": top,
		})
	}
}
