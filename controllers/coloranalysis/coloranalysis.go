package colorAnalysisControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

var (
	warmPalette = []models.SuggestedColor{
		{Name: "Coral", Hex: "#FF7F50"},
		{Name: "Olive Green", Hex: "#808000"},
		{Name: "Terracotta", Hex: "#E2725B"},
		{Name: "Mustard Yellow", Hex: "#FFDB58"},
	}
	coolPalette = []models.SuggestedColor{
		{Name: "Navy Blue", Hex: "#000080"},
		{Name: "Emerald Green", Hex: "#50C878"},
		{Name: "Lavender", Hex: "#E6E6FA"},
		{Name: "Silver", Hex: "#C0C0C0"},
	}
	neutralPalette = []models.SuggestedColor{
		{Name: "Beige", Hex: "#F5F5DC"},
		{Name: "Grey", Hex: "#808080"},
		{Name: "Cream", Hex: "#FFFDD0"},
		{Name: "Taupe", Hex: "#483C32"},
	}
)

// SuggestColors applies the rule-based palette selection: skin tone first,
// hair and eye color as tie-breakers, neutrals always appended, deduped by
// hex.
func SuggestColors(skinTone, hairColor, eyeColor string) []models.SuggestedColor {
	var suggested []models.SuggestedColor

	switch skinTone {
	case "fair", "light":
		if hairColor == "blonde" || hairColor == "red" || eyeColor == "blue" || eyeColor == "green" {
			suggested = append(suggested, coolPalette...)
		} else {
			suggested = append(suggested, neutralPalette...)
		}
	case "medium", "tan":
		if hairColor == "brown" || hairColor == "black" || eyeColor == "brown" || eyeColor == "hazel" {
			suggested = append(suggested, warmPalette...)
		} else {
			suggested = append(suggested, neutralPalette...)
		}
	case "dark":
		suggested = append(suggested, warmPalette...)
		suggested = append(suggested, coolPalette...)
	}

	suggested = append(suggested, neutralPalette...)

	seen := make(map[string]bool, len(suggested))
	unique := suggested[:0]
	for _, color := range suggested {
		if !seen[color.Hex] {
			unique = append(unique, color)
			seen[color.Hex] = true
		}
	}
	return unique
}

type AnalyzeInput struct {
	SkinTone  string `json:"skinTone" binding:"required,oneof=fair light medium tan dark"`
	HairColor string `json:"hairColor" binding:"required,oneof=blonde brown black red grey"`
	EyeColor  string `json:"eyeColor" binding:"required,oneof=blue green brown hazel grey"`
}

// POST /api/color-analysis
func Analyze(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AnalyzeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide skin tone, hair color, and eye color"})
			return
		}

		userID := middleware.UserID(c)
		suggested := SuggestColors(input.SkinTone, input.HairColor, input.EyeColor)

		var profile models.UserColorProfile
		err := db.Where("user_id = ?", userID).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.UserColorProfile{UserID: userID}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		profile.SkinTone = input.SkinTone
		profile.HairColor = input.HairColor
		profile.EyeColor = input.EyeColor
		profile.SuggestedColors = suggested
		profile.AnalysisDate = time.Now()

		if err := db.Save(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save color profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// GET /api/color-analysis
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile models.UserColorProfile
		if err := db.Where("user_id = ?", middleware.UserID(c)).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Color profile not found for this user"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
