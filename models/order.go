package models

import "time"

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"index;not null" json:"userId"`
	User            User        `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress Address     `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	TaxPrice        float64     `json:"taxPrice"`
	ShippingPrice   float64     `json:"shippingPrice"`
	TotalPrice      float64     `json:"totalPrice"`

	IsPaid        bool          `json:"isPaid"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
	PaymentResult PaymentResult `gorm:"embedded;embeddedPrefix:payment_" json:"paymentResult"`

	IsDelivered bool       `json:"isDelivered"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// OrderItem is a frozen snapshot of a cart line; it is never re-resolved
// against the live product after the order is placed.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"orderId"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type PaymentResult struct {
	PaymentID    string     `json:"id"`
	Status       string     `json:"status"`
	UpdateTime   *time.Time `json:"updateTime,omitempty"`
	EmailAddress string     `json:"emailAddress"`
}
