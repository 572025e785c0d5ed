package models

import (
	"strings"
	"time"
)

type Product struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	Tagline     string       `json:"tagline"`
	Price       float64      `gorm:"not null" json:"price"`
	Images      []string     `gorm:"serializer:json" json:"images"`
	CategoryID  uint         `gorm:"index;not null" json:"categoryId"`
	Category    Category     `gorm:"foreignKey:CategoryID" json:"category"`
	Stock       int          `json:"stock"`
	Material    string       `json:"material"`
	Care        string       `json:"care"`
	Details     []string     `gorm:"serializer:json" json:"details"`
	Sizes       []SizeOption `gorm:"serializer:json" json:"sizes"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"reviewCount"`
	Reviews     []Review     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews"`
	Views       int          `json:"views"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// SizeOption is a purchasable size with its own price.
type SizeOption struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// PriceForSize returns the price of the given size label, falling back to the
// product's default price when the size has no entry of its own.
func (p Product) PriceForSize(size string) float64 {
	for _, s := range p.Sizes {
		if strings.EqualFold(s.Size, size) {
			return s.Price
		}
	}
	return p.Price
}

// DefaultPrice picks the XS price when present, otherwise the first size,
// otherwise zero.
func DefaultPrice(sizes []SizeOption) float64 {
	for _, s := range sizes {
		if strings.EqualFold(s.Size, "xs") {
			return s.Price
		}
	}
	if len(sizes) > 0 {
		return sizes[0].Price
	}
	return 0
}
