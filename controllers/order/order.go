package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

var ErrNoOrderItems = errors.New("no order items")

type OrderItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	OrderItems      []OrderItemInput `json:"orderItems" binding:"required"`
	ShippingAddress models.Address   `json:"shippingAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	TaxPrice        float64          `json:"taxPrice"`
	ShippingPrice   float64          `json:"shippingPrice"`
	TotalPrice      float64          `json:"totalPrice"`
}

// -------- Core Logic --------

// Create persists an immutable order snapshot and then clears the user's
// cart. The two writes are intentionally not transactional: a crash in
// between leaves a stale cart the user can rebuild, never a lost order.
func Create(db *gorm.DB, userID uint, input CreateOrderInput) (*models.Order, error) {
	if len(input.OrderItems) == 0 {
		return nil, ErrNoOrderItems
	}

	items := make([]models.OrderItem, 0, len(input.OrderItems))
	for _, it := range input.OrderItems {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Size:      it.Size,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	order := models.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		TaxPrice:        input.TaxPrice,
		ShippingPrice:   input.ShippingPrice,
		TotalPrice:      input.TotalPrice,
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}

	// Cart and items go together via the cascade constraint. A failed clear
	// leaves an orphaned cart the user can rebuild, so the order stands
	// either way; the orphan still needs to show up in the logs.
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err == nil {
		if err := db.Select("Items").Delete(&cart).Error; err != nil {
			log.Printf("order %d: failed to clear cart %d for user %d: %v", order.ID, cart.ID, userID, err)
		}
	}

	return &order, nil
}

// MarkPaid flips the order to paid with a timestamp and payment details.
// Paid is one-way; repeated calls just refresh the payment result.
func MarkPaid(db *gorm.DB, orderID uint, result models.PaymentResult) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = result
	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkDelivered flips the order to delivered with a timestamp.
func MarkDelivered(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now
	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := Create(db, middleware.UserID(c), input)
		if err != nil {
			if errors.Is(err, ErrNoOrderItems) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No order items"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		liveFeed.Publish(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/myorders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("User").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("User").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Preload("User").First(&order, uint(orderID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// Customers can only read their own orders.
		if order.UserID != middleware.UserID(c) && c.GetString(middleware.CtxUserRole) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type PayInput struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	EmailAddress string `json:"email_address"`
}

// PUT /api/orders/:id/pay
func PayOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var input PayInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		now := time.Now()
		order, err := MarkPaid(db, uint(orderID), models.PaymentResult{
			PaymentID:    input.ID,
			Status:       input.Status,
			UpdateTime:   &now,
			EmailAddress: input.EmailAddress,
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/deliver (admin)
func DeliverOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := MarkDelivered(db, uint(orderID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
