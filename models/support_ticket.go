package models

import "time"

type TicketStatus string
type TicketPriority string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"

	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type SupportTicket struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"index;not null" json:"userId"`
	User         User            `gorm:"foreignKey:UserID" json:"user"`
	Subject      string          `gorm:"not null" json:"subject"`
	Description  string          `gorm:"not null" json:"description"`
	Status       TicketStatus    `gorm:"type:varchar(20);default:'open'" json:"status"`
	Priority     TicketPriority  `gorm:"type:varchar(10);default:'medium'" json:"priority"`
	AssignedToID *uint           `json:"assignedToId,omitempty"`
	AssignedTo   *User           `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	Comments     []TicketComment `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type TicketComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"index" json:"ticketId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}
