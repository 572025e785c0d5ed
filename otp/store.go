// Package otp issues and verifies the short-lived numeric codes that gate
// registration and login. Codes are persisted so verification works across
// process restarts and replicas.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"github.com/savi279/clothing-api/models"
)

// TTL is how long an issued code stays valid.
const TTL = 5 * time.Minute

var (
	ErrInvalidCode = errors.New("invalid otp code")
	ErrCodeExpired = errors.New("otp code expired")
)

// Issue generates a fresh 6-digit code for the email and stores it, replacing
// any codes issued earlier. The caller is responsible for delivering it.
func Issue(db *gorm.DB, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	// Older codes for the same email stop being authoritative immediately.
	if err := db.Where("email = ?", email).Delete(&models.Otp{}).Error; err != nil {
		return "", err
	}
	if err := db.Create(&models.Otp{Email: email, Code: code}).Error; err != nil {
		return "", err
	}
	return code, nil
}

// Verify consumes the pending code for the email. A code verifies at most
// once: success deletes the record, and an expired record is deleted as soon
// as it is observed.
func Verify(db *gorm.DB, email, code string) error {
	var record models.Otp
	if err := db.Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCode
		}
		return err
	}

	if time.Since(record.CreatedAt) > TTL {
		if err := db.Delete(&record).Error; err != nil {
			return err
		}
		return ErrCodeExpired
	}

	if record.Code != code {
		return ErrInvalidCode
	}

	return db.Delete(&record).Error
}

// generateCode draws a uniform code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
