package contactControllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savi279/clothing-api/mailer"
)

type MessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /api/contact
// Relays the message to the shop address; with no SMTP configured the sender
// just logs it, which matches what the storefront needs in development.
func SendMessage(sender mailer.Sender, adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		log.Printf("contact form submission from %s (%s)", input.Name, input.Email)

		subject := fmt.Sprintf("New contact message from %s", input.Name)
		body := fmt.Sprintf("<p>From: %s (%s)</p><p>%s</p>", input.Name, input.Email, input.Message)
		if err := sender.Send(adminEmail, subject, body); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Message sent successfully"})
	}
}
