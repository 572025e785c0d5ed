package supportControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

type CreateTicketInput struct {
	Subject     string                `json:"subject" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Priority    models.TicketPriority `json:"priority"`
}

// POST /api/support
func CreateTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateTicketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		priority := input.Priority
		if priority == "" {
			priority = models.TicketPriorityMedium
		}
		if !models.ValidTicketPriority(priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}

		ticket := models.SupportTicket{
			UserID:      middleware.UserID(c),
			Subject:     input.Subject,
			Description: input.Description,
			Status:      models.TicketStatusOpen,
			Priority:    priority,
		}
		if err := db.Create(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
			return
		}
		c.JSON(http.StatusCreated, ticket)
	}
}

// GET /api/support/my-tickets
func GetMyTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tickets []models.SupportTicket
		if err := db.Preload("User").Preload("AssignedTo").Preload("Comments").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at DESC").
			Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

// GET /api/support (admin)
func GetAllTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tickets []models.SupportTicket
		if err := db.Preload("User").Preload("AssignedTo").Preload("Comments").
			Order("created_at DESC").
			Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

type UpdateTicketInput struct {
	Status       models.TicketStatus   `json:"status"`
	Priority     models.TicketPriority `json:"priority"`
	AssignedToID *uint                 `json:"assignedToId"`
}

// PUT /api/support/:id (admin)
func UpdateTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}

		var ticket models.SupportTicket
		if err := db.First(&ticket, uint(id)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}

		var input UpdateTicketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Status != "" {
			if !models.ValidTicketStatus(input.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
				return
			}
			ticket.Status = input.Status
		}
		if input.Priority != "" {
			if !models.ValidTicketPriority(input.Priority) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
				return
			}
			ticket.Priority = input.Priority
		}
		if input.AssignedToID != nil {
			ticket.AssignedToID = input.AssignedToID
		}

		if err := db.Save(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ticket"})
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

type CommentInput struct {
	Comment string `json:"comment" binding:"required"`
}

// POST /api/support/:id/comment
// Only the ticket owner or an admin may comment.
func AddComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}

		var ticket models.SupportTicket
		if err := db.First(&ticket, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		userID := middleware.UserID(c)
		if ticket.UserID != userID && c.GetString(middleware.CtxUserRole) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		var input CommentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		comment := models.TicketComment{TicketID: ticket.ID, UserID: userID, Comment: input.Comment}
		if err := db.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
			return
		}

		if err := db.Preload("Comments").Preload("User").First(&ticket, ticket.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}
