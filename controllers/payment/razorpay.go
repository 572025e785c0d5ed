package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/config"
	orderControllers "github.com/savi279/clothing-api/controllers/order"
	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

// Client talks to the Razorpay orders API.
type Client struct {
	cfg  config.Razorpay
	http *http.Client
}

func NewClient(cfg config.Razorpay) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.cfg.KeyID != "" && c.cfg.KeySecret != ""
}

// GatewayOrder is the subset of the gateway's order object we pass through.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateChargeOrder registers a charge with the gateway. Amount is in rupees;
// the gateway wants paise.
func (c *Client) CreateChargeOrder(amount float64, currency, receipt string) (*GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":          int64(amount * 100),
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway error (%d): %s", resp.StatusCode, string(respBody))
	}

	var order GatewayOrder
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the gateway's HMAC-SHA256 signature over
// "orderID|paymentID" against the shared secret.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// -------- Handlers --------

type CreateOrderInput struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

// POST /api/payment/order
func CreateGatewayOrder(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.Configured() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment gateway not configured"})
			return
		}

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		currency := input.Currency
		if currency == "" {
			currency = "INR"
		}

		receipt := "rcpt_" + uuid.NewString()
		order, err := client.CreateChargeOrder(input.Amount, currency, receipt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type VerifyInput struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	OrderID           uint   `json:"orderId" binding:"required"`
}

// POST /api/payment/verify
// A bad signature is a client-facing 400, not a security event.
func VerifyPayment(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment gateway not configured"})
			return
		}

		var input VerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !VerifySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, secret) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
			return
		}

		now := time.Now()
		_, err := orderControllers.MarkPaid(db, input.OrderID, models.PaymentResult{
			PaymentID:    input.RazorpayPaymentID,
			Status:       "paid",
			UpdateTime:   &now,
			EmailAddress: c.GetString(middleware.CtxUserEmail),
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Payment verified successfully"})
	}
}
