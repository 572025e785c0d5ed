package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

var ErrItemNotFound = errors.New("cart item not found")

// emptyCart is the response shape for a user who has no cart record yet; the
// zero ID tells the client nothing has been persisted.
func emptyCart(userID uint) *models.Cart {
	return &models.Cart{UserID: userID, Items: []models.CartItem{}}
}

// -------- Core Logic --------

// AddItem puts (productID, size) into the user's cart, creating the cart
// lazily. A repeat add of the same pair increments the quantity instead of
// inserting a second line.
func AddItem(db *gorm.DB, userID, productID uint, quantity int, size string) (*models.Cart, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return nil, err
	}

	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ? AND size = ?", cart.ID, productID, size).
		First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Size:      size,
			Quantity:  quantity,
			Price:     product.PriceForSize(size),
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return Populated(db, cart.ID)
}

// UpdateItem overwrites the quantity of an existing (productID, size) line.
func UpdateItem(db *gorm.DB, userID, productID uint, size string, quantity int) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	var item models.CartItem
	if err := db.Where("cart_id = ? AND product_id = ? AND size = ?", cart.ID, productID, size).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Quantity = quantity
	item.AddedAt = time.Now()
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return Populated(db, cart.ID)
}

// RemoveItem deletes the (productID, size) line. Removing an absent line is
// not an error; the current cart state comes back either way.
func RemoveItem(db *gorm.DB, userID, productID uint, size string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyCart(userID), nil
		}
		return nil, err
	}

	if err := db.Where("cart_id = ? AND product_id = ? AND size = ?", cart.ID, productID, size).
		Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	return Populated(db, cart.ID)
}

// Populated loads a cart with its product data resolved.
func Populated(db *gorm.DB, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Preload("Items.Product").First(&cart, cartID).Error; err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// -------- Handlers --------

type AddItemInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size" binding:"required"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart models.Cart
		err := db.Preload("Items.Product").Where("user_id = ?", middleware.UserID(c)).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, emptyCart(middleware.UserID(c)))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /api/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddItem(db, middleware.UserID(c), input.ProductID, input.Quantity, input.Size)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /api/cart/:productId/:size
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateItem(db, middleware.UserID(c), uint(productID), c.Param("size"), input.Quantity)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/:productId/:size
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		cart, err := RemoveItem(db, middleware.UserID(c), uint(productID), c.Param("size"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
