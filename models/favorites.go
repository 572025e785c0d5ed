package models

import "time"

type Favorites struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex" json:"userId"`
	Items     []FavoriteItem `gorm:"foreignKey:FavoritesID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type FavoriteItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	FavoritesID uint    `gorm:"index" json:"favoritesId"`
	ProductID   uint    `gorm:"not null" json:"productId"`
	Product     Product `gorm:"foreignKey:ProductID" json:"product"`
}
