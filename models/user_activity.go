package models

import "time"

type UserActivity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"userId"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Action    string         `gorm:"type:varchar(30);not null" json:"action"`
	Details   map[string]any `gorm:"serializer:json" json:"details,omitempty"`
	IPAddress string         `json:"ipAddress,omitempty"`
	UserAgent string         `json:"userAgent,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

var activityActions = map[string]bool{
	"login":                 true,
	"logout":                true,
	"view_product":          true,
	"add_to_cart":           true,
	"remove_from_cart":      true,
	"add_to_favorites":      true,
	"remove_from_favorites": true,
	"place_order":           true,
	"cancel_order":          true,
	"review_product":        true,
	"update_profile":        true,
}

func ValidActivityAction(action string) bool {
	return activityActions[action]
}
