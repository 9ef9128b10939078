package services

import (
	"errors"
	"testing"
	"time"

	"github.com/borantia/backend/internal/models"
)

func boolPtr(v bool) *bool { return &v }

func validPostingRequest() *PostingRequest {
	return &PostingRequest{
		Title:            "River cleanup",
		Location:         "Kumamoto",
		StartDate:        "2026-09-01",
		EndDate:          "2026-09-03",
		RecruitingNumber: 5,
		Phone:            "090-1111-2222",
		Accommodation:    boolPtr(true),
		Car:              models.CarRequirementPreferred,
		Tools:            []string{"gloves", "boots"},
	}
}

func TestPostingCreate(t *testing.T) {
	db := newTestDB(t, "posting_create")
	svc := NewPostingService(db)
	org := createTestOrganization(t, db, "org@example.com")

	posting, err := svc.Create(org.ID, validPostingRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if posting.Status != models.PostingStatusRecruiting {
		t.Errorf("Status = %q, expected recruiting", posting.Status)
	}
	if posting.ApplicantsNumber != 0 {
		t.Errorf("ApplicantsNumber = %d, expected 0", posting.ApplicantsNumber)
	}

	var tools []models.Tool
	db.Where("posting_id = ?", posting.ID).Find(&tools)
	if len(tools) != 2 {
		t.Errorf("expected 2 tools, got %d", len(tools))
	}
}

func TestPostingCreate_InvalidDateRange(t *testing.T) {
	db := newTestDB(t, "posting_bad_dates")
	svc := NewPostingService(db)
	org := createTestOrganization(t, db, "org@example.com")

	req := validPostingRequest()
	req.StartDate = "2026-09-03"
	req.EndDate = "2026-09-01"

	if _, err := svc.Create(org.ID, req); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestPostingUpdate_ReplacesTools(t *testing.T) {
	db := newTestDB(t, "posting_update_tools")
	svc := NewPostingService(db)
	org := createTestOrganization(t, db, "org@example.com")

	posting, err := svc.Create(org.ID, validPostingRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	req := validPostingRequest()
	req.Title = "River cleanup (updated)"
	req.Tools = []string{"shovel"}
	if err := svc.Update(org.ID, posting.ID, req); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var updated models.Posting
	db.First(&updated, posting.ID)
	if updated.Title != "River cleanup (updated)" {
		t.Errorf("Title = %q", updated.Title)
	}

	var tools []models.Tool
	db.Where("posting_id = ?", posting.ID).Find(&tools)
	if len(tools) != 1 || tools[0].Name != "shovel" {
		t.Errorf("tool list should be replaced wholesale, got %v", tools)
	}
}

func TestPostingUpdate_OwnershipGate(t *testing.T) {
	db := newTestDB(t, "posting_update_ownership")
	svc := NewPostingService(db)
	owner := createTestOrganization(t, db, "owner@example.com")
	other := createTestOrganization(t, db, "other@example.com")

	posting, err := svc.Create(owner.ID, validPostingRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Update(other.ID, posting.ID, validPostingRequest()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign posting, got %v", err)
	}
	if err := svc.Update(owner.ID, 9999, validPostingRequest()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing posting, got %v", err)
	}
}

func TestPostingDelete_OwnershipGate(t *testing.T) {
	db := newTestDB(t, "posting_delete")
	svc := NewPostingService(db)
	owner := createTestOrganization(t, db, "owner@example.com")
	other := createTestOrganization(t, db, "other@example.com")

	posting, err := svc.Create(owner.ID, validPostingRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(other.ID, posting.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign posting, got %v", err)
	}
	if err := svc.Delete(owner.ID, posting.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int64
	db.Model(&models.Posting{}).Where("id = ?", posting.ID).Count(&count)
	if count != 0 {
		t.Error("posting should be deleted")
	}
}

func TestPostingList_RecruitingOnlyOrdered(t *testing.T) {
	db := newTestDB(t, "posting_list")
	svc := NewPostingService(db)
	org := createTestOrganization(t, db, "org@example.com")

	later := createTestPosting(t, db, org.ID)
	db.Model(later).Update("start_date", time.Now().AddDate(0, 1, 0))

	earlier := createTestPosting(t, db, org.ID)
	db.Model(earlier).Update("start_date", time.Now().AddDate(0, 0, 1))

	closed := createTestPosting(t, db, org.ID)
	db.Model(closed).Update("status", models.PostingStatusClosed)

	items, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 recruiting postings, got %d", len(items))
	}
	if items[0].ID != earlier.ID || items[1].ID != later.ID {
		t.Errorf("postings should be ordered by start date ascending, got %d then %d", items[0].ID, items[1].ID)
	}
}

func TestPostingGet_AttachesViewerEntry(t *testing.T) {
	db := newTestDB(t, "posting_get_viewer")
	svc := NewPostingService(db)
	entries := NewApplyEntryService(db)

	user := createTestUser(t, db, "applicant@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	org := createTestOrganization(t, db, "org@example.com")
	posting := createTestPosting(t, db, org.ID)

	submitted, err := entries.Submit(user.ID, posting.ID)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	detail, err := svc.Get(posting.ID, models.RoleUser, user.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.ApplyEntry == nil || detail.ApplyEntry.EntryID != submitted.EntryID {
		t.Error("applicant's own entry should be attached")
	}

	detail, err = svc.Get(posting.ID, models.RoleUser, stranger.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.ApplyEntry != nil {
		t.Error("stranger should see no entry")
	}

	detail, err = svc.Get(posting.ID, "", 0)
	if err != nil {
		t.Fatalf("anonymous Get failed: %v", err)
	}
	if detail.ApplyEntry != nil {
		t.Error("anonymous viewer should see no entry")
	}
}

func TestPostingGet_NotFound(t *testing.T) {
	db := newTestDB(t, "posting_get_missing")
	svc := NewPostingService(db)

	if _, err := svc.Get(9999, "", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCloseExpired(t *testing.T) {
	db := newTestDB(t, "posting_close_expired")
	svc := NewPostingService(db)
	org := createTestOrganization(t, db, "org@example.com")

	past := createTestPosting(t, db, org.ID)
	db.Model(past).Update("end_date", time.Now().AddDate(0, 0, -3))

	future := createTestPosting(t, db, org.ID)

	closed, err := svc.CloseExpired(time.Now())
	if err != nil {
		t.Fatalf("CloseExpired failed: %v", err)
	}
	if closed != 1 {
		t.Errorf("closed = %d, expected 1", closed)
	}

	var p models.Posting
	db.First(&p, past.ID)
	if p.Status != models.PostingStatusClosed {
		t.Errorf("past posting status = %q, expected closed", p.Status)
	}
	p = models.Posting{}
	db.First(&p, future.ID)
	if p.Status != models.PostingStatusRecruiting {
		t.Errorf("future posting status = %q, expected recruiting", p.Status)
	}
}
