package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

var ErrAlreadyReviewed = errors.New("product already reviewed by user")

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// SubmitProductReview adds one review per user per product and recomputes the
// stored average rating and review count.
func SubmitProductReview(db *gorm.DB, productID, userID uint, rating int, comment string) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return nil, err
	}

	var existing models.Review
	err := db.Where("product_id = ? AND user_id = ?", productID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyReviewed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := models.Review{ProductID: productID, UserID: userID, Rating: rating, Comment: comment}
	if err := db.Create(&review).Error; err != nil {
		return nil, err
	}

	var stats struct {
		Count int64
		Avg   float64
	}
	if err := db.Model(&models.Review{}).
		Select("COUNT(*) AS count, AVG(rating) AS avg").
		Where("product_id = ?", productID).
		Scan(&stats).Error; err != nil {
		return nil, err
	}

	product.ReviewCount = int(stats.Count)
	product.Rating = stats.Avg
	if err := db.Model(&product).Updates(map[string]interface{}{
		"review_count": product.ReviewCount,
		"rating":       product.Rating,
	}).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("Reviews.User").Preload("Category").First(&product, productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// POST /api/products/:id/review
func SubmitReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := SubmitProductReview(db, uint(id), middleware.UserID(c), input.Rating, input.Comment)
		if err != nil {
			switch {
			case errors.Is(err, ErrAlreadyReviewed):
				c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this product"})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
