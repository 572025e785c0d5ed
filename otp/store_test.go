package otp

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/savi279/clothing-api/models"
)

var testDBSeq int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:otp_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Otp{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestIssueAndVerify(t *testing.T) {
	db := openTestDB(t)

	code, err := Issue(db, "a@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	if err := Verify(db, "a@example.com", code); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// Single use: the same code must not verify twice.
	if err := Verify(db, "a@example.com", code); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode on second verify, got %v", err)
	}
}

func TestVerifyWrongCode(t *testing.T) {
	db := openTestDB(t)

	code, err := Issue(db, "a@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if err := Verify(db, "a@example.com", wrong); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}

	// A wrong guess does not consume the pending code.
	if err := Verify(db, "a@example.com", code); err != nil {
		t.Fatalf("verify after wrong guess: %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	db := openTestDB(t)

	code, err := Issue(db, "a@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Backdate the record past the window.
	expired := time.Now().Add(-TTL - time.Second)
	if err := db.Model(&models.Otp{}).Where("email = ?", "a@example.com").
		Update("created_at", expired).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	if err := Verify(db, "a@example.com", code); !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("expected ErrCodeExpired, got %v", err)
	}

	// Expiry is terminal: the record is gone, so a retry reads as invalid.
	if err := Verify(db, "a@example.com", code); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode after expiry cleanup, got %v", err)
	}
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	db := openTestDB(t)

	first, err := Issue(db, "a@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, err := Issue(db, "a@example.com")
	if err != nil {
		t.Fatalf("reissue: %v", err)
	}

	if first != second {
		if err := Verify(db, "a@example.com", first); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("expected stale code to be rejected, got %v", err)
		}
	}
	if err := Verify(db, "a@example.com", second); err != nil {
		t.Fatalf("verify reissued code: %v", err)
	}

	var count int64
	db.Model(&models.Otp{}).Where("email = ?", "a@example.com").Count(&count)
	if count != 0 {
		t.Fatalf("expected no records left, got %d", count)
	}
}
