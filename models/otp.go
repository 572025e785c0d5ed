package models

import "time"

// Otp is a short-lived login/registration code. At most one record per email
// is authoritative: issuing a new code deletes the older ones first.
type Otp struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"index;not null" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
