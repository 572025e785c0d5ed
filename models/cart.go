package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem lines are unique per (ProductID, Size) within one cart; a repeat
// add of the same pair increments Quantity instead of inserting.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"cartId"`
	ProductID uint      `gorm:"not null" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Size      string    `gorm:"not null" json:"size"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"` // unit price snapshot at add time
	AddedAt   time.Time `json:"addedAt"`
}
