package authControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/mailer"
	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
	"github.com/savi279/clothing-api/otp"
)

type CheckUserInput struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOtpInput struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required,len=6"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// issueToken signs a one-hour session token for the user.
func issueToken(secret string, user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// POST /api/auth/check-user
// Issues an OTP to the email and tells the frontend whether an account
// already exists, so it can route to login or registration.
func CheckUser(db *gorm.DB, sender mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", input.Email).First(&user).Error
		userExists := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		code, err := otp.Issue(db, input.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue OTP"})
			return
		}

		if err := sender.Send(input.Email, "Your OTP for Clothing Brand Registration/Login", mailer.OTPBody(code)); err != nil {
			// The stored code stays usable, but the caller needs to know
			// nothing arrived.
			log.Printf("otp mail to %s failed: %v", input.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"userExists": userExists,
			"msg":        "OTP sent to your email for verification.",
		})
	}
}

// POST /api/auth/verify-otp
func VerifyOtp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOtpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := otp.Verify(db, input.Email, input.Otp); err != nil {
			switch {
			case errors.Is(err, otp.ErrCodeExpired):
				c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired, request a new one"})
			case errors.Is(err, otp.ErrInvalidCode):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			}
			return
		}

		var user models.User
		err := db.Where("email = ?", input.Email).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"userExists": true,
				"msg":        "OTP verified. Please login with your password.",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"userExists": false,
			"msg":        "OTP verified. Please create a new account.",
		})
	}
}

// POST /api/auth/register
// Registration runs after OTP verification, so the account starts verified.
func Register(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		role := input.Role
		if role != models.RoleAdmin {
			role = models.RoleCustomer
		}

		user := models.User{
			Name:       input.Name,
			Email:      input.Email,
			Username:   input.Username,
			Password:   string(hash),
			Mobile:     input.Mobile,
			Role:       role,
			IsVerified: true,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := issueToken(secret, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"msg":   "User registered successfully.",
			"token": token,
			"user":  user.Public(),
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}

		if !user.IsVerified {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account not verified."})
			return
		}

		token, err := issueToken(secret, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"role":  user.Role,
			"user":  user.Public(),
		})
	}
}

// GET /api/auth/user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, middleware.UserID(c)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}

type UpdateProfileInput struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Mobile   *string `json:"mobile"`
	Gender   *string `json:"gender"`
	Address  *string `json:"address"`
}

// PUT /api/auth/user
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, middleware.UserID(c)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Mobile != nil {
			updates["mobile"] = *input.Mobile
		}
		if input.Gender != nil {
			updates["gender"] = *input.Gender
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}
		if input.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
				return
			}
			updates["password"] = string(hash)
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, user.Public())
	}
}
