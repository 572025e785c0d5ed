package favoritesControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

// -------- Core Logic --------

// Toggle flips the product's membership in the user's favorites: present
// removes it, absent inserts it. Calling twice restores the original state.
func Toggle(db *gorm.DB, userID, productID uint) ([]models.FavoriteItem, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return nil, err
	}

	var favorites models.Favorites
	err := db.Where("user_id = ?", userID).First(&favorites).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		favorites = models.Favorites{UserID: userID}
		if err := db.Create(&favorites).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	var item models.FavoriteItem
	err = db.Where("favorites_id = ? AND product_id = ?", favorites.ID, productID).First(&item).Error
	switch {
	case err == nil:
		if err := db.Delete(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.FavoriteItem{FavoritesID: favorites.ID, ProductID: productID}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return items(db, favorites.ID)
}

// Remove deletes the product from the favorites set; removing an absent
// product is a no-op.
func Remove(db *gorm.DB, userID, productID uint) ([]models.FavoriteItem, error) {
	var favorites models.Favorites
	if err := db.Where("user_id = ?", userID).First(&favorites).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.FavoriteItem{}, nil
		}
		return nil, err
	}

	if err := db.Where("favorites_id = ? AND product_id = ?", favorites.ID, productID).
		Delete(&models.FavoriteItem{}).Error; err != nil {
		return nil, err
	}
	return items(db, favorites.ID)
}

func items(db *gorm.DB, favoritesID uint) ([]models.FavoriteItem, error) {
	var list []models.FavoriteItem
	if err := db.Preload("Product").Where("favorites_id = ?", favoritesID).Find(&list).Error; err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.FavoriteItem{}
	}
	return list, nil
}

// -------- Handlers --------

// GET /api/favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var favorites models.Favorites
		err := db.Where("user_id = ?", middleware.UserID(c)).First(&favorites).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, []models.FavoriteItem{})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		list, err := items(db, favorites.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /api/favorites/:productId
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		list, err := Toggle(db, middleware.UserID(c), uint(productID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// DELETE /api/favorites/:productId
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		list, err := Remove(db, middleware.UserID(c), uint(productID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
