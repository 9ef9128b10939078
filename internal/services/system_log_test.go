package services

import (
	"testing"
	"time"

	"github.com/borantia/backend/internal/models"
)

func TestSystemLog_WriteAndList(t *testing.T) {
	db := newTestDB(t, "syslog_write")
	InitSystemLogger(db)
	defer InitSystemLogger(nil)

	actorID := uint(7)
	LogInfo("Apply Entries", "Create", "applied", &actorID, models.RoleUser, "127.0.0.1", "test-agent", map[string]interface{}{"posting_id": 3})
	LogWarning("Auth", "Login", "bad password", nil, "", "127.0.0.1", "test-agent", nil)

	svc := NewSystemLogService(db)
	resp, err := svc.List(&SystemLogListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, expected 2", resp.Total)
	}

	resp, err = svc.List(&SystemLogListRequest{Level: "warning"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].Module != "Auth" {
		t.Errorf("level filter failed: %+v", resp)
	}

	resp, err = svc.List(&SystemLogListRequest{ActorRole: models.RoleUser})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ActorID == nil || *resp.Items[0].ActorID != 7 {
		t.Errorf("actor_role filter failed: %+v", resp)
	}
}

func TestSystemLog_CleanupOldLogs(t *testing.T) {
	db := newTestDB(t, "syslog_cleanup")
	svc := NewSystemLogService(db)

	old := models.SystemLog{Level: "info", Module: "Test", Message: "old", CreatedAt: time.Now().AddDate(0, 0, -60)}
	recent := models.SystemLog{Level: "info", Module: "Test", Message: "recent", CreatedAt: time.Now()}
	db.Create(&old)
	db.Create(&recent)

	deleted, err := svc.CleanupOldLogs(30)
	if err != nil {
		t.Fatalf("CleanupOldLogs failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, expected 1", deleted)
	}

	var count int64
	db.Model(&models.SystemLog{}).Count(&count)
	if count != 1 {
		t.Errorf("remaining = %d, expected 1", count)
	}

	if deleted, _ := svc.CleanupOldLogs(0); deleted != 0 {
		t.Errorf("retention <= 0 must be a no-op, deleted %d", deleted)
	}
}
