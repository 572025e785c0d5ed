package cartControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

var testDBSeq int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:cart_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{}, &models.Review{},
		&models.Cart{}, &models.CartItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	cat := models.Category{Name: "Shirts"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{
		Name:       "Oxford Shirt",
		Price:      49.0,
		CategoryID: cat.ID,
		Sizes: []models.SizeOption{
			{Size: "M", Price: 49.0},
			{Size: "L", Price: 52.0},
		},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db)

	if _, err := AddItem(db, 1, product.ID, 2, "M"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := AddItem(db, 1, product.ID, 3, "M")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Price != 49.0 {
		t.Fatalf("expected size-M price snapshot 49.0, got %v", cart.Items[0].Price)
	}
}

func TestAddItemDifferentSizesAreSeparateLines(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db)

	if _, err := AddItem(db, 1, product.ID, 1, "M"); err != nil {
		t.Fatalf("add M: %v", err)
	}
	cart, err := AddItem(db, 1, product.ID, 1, "L")
	if err != nil {
		t.Fatalf("add L: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("expected two lines, got %d", len(cart.Items))
	}
}

func TestUpdateItem(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db)

	t.Run("missing line -> ErrItemNotFound", func(t *testing.T) {
		if _, err := UpdateItem(db, 1, product.ID, "M", 4); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("overwrites quantity", func(t *testing.T) {
		if _, err := AddItem(db, 1, product.ID, 2, "M"); err != nil {
			t.Fatalf("add: %v", err)
		}
		cart, err := UpdateItem(db, 1, product.ID, "M", 7)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if cart.Items[0].Quantity != 7 {
			t.Fatalf("expected quantity 7, got %d", cart.Items[0].Quantity)
		}
	})
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db)

	if _, err := AddItem(db, 1, product.ID, 2, "M"); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := RemoveItem(db, 1, product.ID, "M")
	if err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}

	cart, err = RemoveItem(db, 1, product.ID, "M")
	if err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected cart to stay empty, got %d items", len(cart.Items))
	}
}

func TestRemoveItemWithoutCart(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db)

	cart, err := RemoveItem(db, 42, product.ID, "M")
	if err != nil {
		t.Fatalf("remove without cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart shape, got %d items", len(cart.Items))
	}
}

func TestEmptyCartShapeIsConsistent(t *testing.T) {
	db := openTestDB(t)
	product := seedProduct(t, db)
	const userID = 9

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.CtxUserID, uint(userID)) })
	r.GET("/api/cart", GetCart(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get cart: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var fromGet models.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &fromGet); err != nil {
		t.Fatalf("unmarshal cart: %v", err)
	}
	if fromGet.ID != 0 || fromGet.UserID != userID || fromGet.Items == nil || len(fromGet.Items) != 0 {
		t.Fatalf("unexpected empty-cart shape from GET: %+v", fromGet)
	}

	// Removing from a nonexistent cart returns the same shape.
	fromRemove, err := RemoveItem(db, userID, product.ID, "M")
	if err != nil {
		t.Fatalf("remove without cart: %v", err)
	}
	if fromRemove.ID != fromGet.ID || fromRemove.UserID != fromGet.UserID ||
		len(fromRemove.Items) != len(fromGet.Items) {
		t.Fatalf("empty-cart shapes differ: GET %+v vs remove %+v", fromGet, *fromRemove)
	}
}
