package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"type:varchar(20);default:'customer'" json:"role"`
	IsVerified bool      `json:"isVerified"`
	Mobile     string    `json:"mobile"`
	Gender     string    `json:"gender"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PublicUser is the profile shape returned by auth endpoints.
type PublicUser struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	Mobile     string    `json:"mobile,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Username:   u.Username,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		Mobile:     u.Mobile,
		Gender:     u.Gender,
		Address:    u.Address,
		CreatedAt:  u.CreatedAt,
	}
}
