package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/borantia/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database migrated with the full schema.
// The named shared-cache DSN keeps every pooled connection on the same
// database within one test.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Image{},
		&models.Posting{},
		&models.Tool{},
		&models.ApplyEntry{},
		&models.ChatRoom{},
		&models.ChatRoomUser{},
		&models.ChatMessage{},
		&models.SystemLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
		Role:     models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func createTestOrganization(t *testing.T, db *gorm.DB, email string) *models.Organization {
	t.Helper()
	org := models.Organization{
		Name:     "Test Org",
		Email:    email,
		Password: "hashed",
		Role:     models.RoleOrganization,
	}
	if err := db.Create(&org).Error; err != nil {
		t.Fatalf("failed to create organization: %v", err)
	}
	return &org
}

func createTestPosting(t *testing.T, db *gorm.DB, organizationID uint) *models.Posting {
	t.Helper()
	posting := models.Posting{
		OrganizationID:   organizationID,
		Title:            "Beach cleanup",
		Location:         "Chiba",
		StartDate:        time.Now().AddDate(0, 0, 7),
		EndDate:          time.Now().AddDate(0, 0, 8),
		RecruitingNumber: 10,
		Phone:            "090-0000-0000",
		Car:              models.CarRequirementNone,
		Status:           models.PostingStatusRecruiting,
	}
	if err := db.Create(&posting).Error; err != nil {
		t.Fatalf("failed to create posting: %v", err)
	}
	return &posting
}
