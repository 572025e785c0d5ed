package productControllers

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/savi279/clothing-api/models"
)

var testDBSeq int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:product_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Review{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seed(t *testing.T, db *gorm.DB) (models.Product, models.User, models.User) {
	t.Helper()
	cat := models.Category{Name: "Knitwear"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{Name: "Wool Sweater", Price: 89.0, CategoryID: cat.ID}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	u1 := models.User{Name: "A", Email: "a@example.com", Username: "a", Password: "x"}
	u2 := models.User{Name: "B", Email: "b@example.com", Username: "b", Password: "x"}
	if err := db.Create(&u1).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&u2).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return product, u1, u2
}

func TestSubmitProductReview(t *testing.T) {
	db := openTestDB(t)
	product, u1, u2 := seed(t, db)

	got, err := SubmitProductReview(db, product.ID, u1.ID, 4, "solid")
	if err != nil {
		t.Fatalf("first review: %v", err)
	}
	if got.ReviewCount != 1 || got.Rating != 4 {
		t.Fatalf("expected count=1 rating=4, got count=%d rating=%v", got.ReviewCount, got.Rating)
	}

	got, err = SubmitProductReview(db, product.ID, u2.ID, 2, "meh")
	if err != nil {
		t.Fatalf("second review: %v", err)
	}
	if got.ReviewCount != 2 || got.Rating != 3 {
		t.Fatalf("expected count=2 rating=3, got count=%d rating=%v", got.ReviewCount, got.Rating)
	}
}

func TestSubmitProductReviewDuplicate(t *testing.T) {
	db := openTestDB(t)
	product, u1, _ := seed(t, db)

	if _, err := SubmitProductReview(db, product.ID, u1.ID, 5, "great"); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := SubmitProductReview(db, product.ID, u1.ID, 1, "changed my mind"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}

	var count int64
	db.Model(&models.Review{}).Where("product_id = ?", product.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one review, got %d", count)
	}
}

func TestSubmitProductReviewMissingProduct(t *testing.T) {
	db := openTestDB(t)
	_, u1, _ := seed(t, db)

	if _, err := SubmitProductReview(db, 9999, u1.ID, 3, ""); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
