package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/savi279/clothing-api/config"
	"github.com/savi279/clothing-api/models"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	good := sign(secret, "order_abc", "pay_xyz")

	t.Run("valid signature", func(t *testing.T) {
		if !VerifySignature("order_abc", "pay_xyz", good, secret) {
			t.Fatal("expected valid signature to verify")
		}
	})

	t.Run("tampered payment id", func(t *testing.T) {
		if VerifySignature("order_abc", "pay_other", good, secret) {
			t.Fatal("tampered payload must not verify")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if VerifySignature("order_abc", "pay_xyz", good, "other_secret") {
			t.Fatal("signature under another secret must not verify")
		}
	})

	t.Run("garbage signature", func(t *testing.T) {
		if VerifySignature("order_abc", "pay_xyz", "not-hex", secret) {
			t.Fatal("garbage signature must not verify")
		}
	})
}

func TestCreateChargeOrder(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("expected basic auth on gateway request")
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(GatewayOrder{
			ID: "order_live_1", Amount: 12345, Currency: "INR", Receipt: "rcpt_1", Status: "created",
		})
	}))
	defer srv.Close()

	client := NewClient(config.Razorpay{BaseURL: srv.URL, KeyID: "key", KeySecret: "secret"})

	order, err := client.CreateChargeOrder(123.45, "INR", "rcpt_1")
	if err != nil {
		t.Fatalf("create charge order: %v", err)
	}
	if gotPath != "/orders" {
		t.Fatalf("expected POST /orders, got %s", gotPath)
	}
	if gotBody["amount"].(float64) != 12345 {
		t.Fatalf("expected amount in paise 12345, got %v", gotBody["amount"])
	}
	if order.ID != "order_live_1" || order.Status != "created" {
		t.Fatalf("unexpected gateway order: %+v", order)
	}
}

func TestCreateChargeOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"description":"bad request"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(config.Razorpay{BaseURL: srv.URL, KeyID: "key", KeySecret: "secret"})
	if _, err := client.CreateChargeOrder(10, "INR", "rcpt_2"); err == nil {
		t.Fatal("expected error on non-200 gateway response")
	}
}

var testDBSeq int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:payment_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestVerifyPaymentHandler(t *testing.T) {
	const secret = "test_secret"
	db := openTestDB(t)

	order := models.Order{UserID: 1, TotalPrice: 112.8}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/payment/verify", VerifyPayment(db, secret))

	verify := func(t *testing.T, signature string) *httptest.ResponseRecorder {
		t.Helper()
		body, _ := json.Marshal(gin.H{
			"razorpay_order_id":   "order_abc",
			"razorpay_payment_id": "pay_xyz",
			"razorpay_signature":  signature,
			"orderId":             order.ID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/payment/verify", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("tampered signature leaves order unpaid", func(t *testing.T) {
		w := verify(t, sign(secret, "order_abc", "pay_other"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
		var got models.Order
		if err := db.First(&got, order.ID).Error; err != nil {
			t.Fatalf("reload order: %v", err)
		}
		if got.IsPaid {
			t.Fatal("order must stay unpaid after a bad signature")
		}
	})

	t.Run("valid signature marks order paid", func(t *testing.T) {
		w := verify(t, sign(secret, "order_abc", "pay_xyz"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got models.Order
		if err := db.First(&got, order.ID).Error; err != nil {
			t.Fatalf("reload order: %v", err)
		}
		if !got.IsPaid || got.PaidAt == nil || got.PaymentResult.PaymentID != "pay_xyz" {
			t.Fatalf("expected paid order with payment result, got %+v", got)
		}
	})
}
