package models

import "time"

// UserColorProfile stores the result of the most recent color analysis; one
// profile per user, overwritten on re-analysis.
type UserColorProfile struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	UserID          uint             `gorm:"uniqueIndex;not null" json:"userId"`
	SkinTone        string           `gorm:"type:varchar(10);not null" json:"skinTone"`
	HairColor       string           `gorm:"type:varchar(10);not null" json:"hairColor"`
	EyeColor        string           `gorm:"type:varchar(10);not null" json:"eyeColor"`
	SuggestedColors []SuggestedColor `gorm:"serializer:json" json:"suggestedColors"`
	AnalysisDate    time.Time        `json:"analysisDate"`
}

type SuggestedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}
