package services

import (
	"testing"
)

func TestUserApplications_SplitsByApproval(t *testing.T) {
	db := newTestDB(t, "mypage_user")
	entries := NewApplyEntryService(db)
	svc := NewMypageService(db)

	user := createTestUser(t, db, "applicant@example.com")
	org := createTestOrganization(t, db, "org@example.com")
	postingA := createTestPosting(t, db, org.ID)
	postingB := createTestPosting(t, db, org.ID)

	first, err := entries.Submit(user.ID, postingA.ID)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := entries.Submit(user.ID, postingB.ID); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := entries.Approve(first.EntryID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	resp, err := svc.UserApplications(user.ID)
	if err != nil {
		t.Fatalf("UserApplications failed: %v", err)
	}
	if len(resp.Approved) != 1 || len(resp.Waiting) != 1 {
		t.Fatalf("approved=%d waiting=%d, expected 1/1", len(resp.Approved), len(resp.Waiting))
	}
	if resp.Approved[0].ID != first.EntryID {
		t.Errorf("approved entry = %d, expected %d", resp.Approved[0].ID, first.EntryID)
	}
	if resp.Approved[0].Posting.Organization.Name != "Test Org" {
		t.Error("posting should embed its organization")
	}
}

func TestOrganizationPostings_IncludesApplicantsAndRooms(t *testing.T) {
	db := newTestDB(t, "mypage_org")
	entries := NewApplyEntryService(db)
	svc := NewMypageService(db)

	user := createTestUser(t, db, "applicant@example.com")
	org := createTestOrganization(t, db, "org@example.com")
	other := createTestOrganization(t, db, "other@example.com")
	posting := createTestPosting(t, db, org.ID)
	createTestPosting(t, db, other.ID)

	submitted, err := entries.Submit(user.ID, posting.ID)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	items, err := svc.OrganizationPostings(org.ID)
	if err != nil {
		t.Fatalf("OrganizationPostings failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected only own postings, got %d", len(items))
	}
	if len(items[0].ApplyEntries) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(items[0].ApplyEntries))
	}

	entry := items[0].ApplyEntries[0]
	if entry.User.Email != "applicant@example.com" {
		t.Errorf("applicant email = %q", entry.User.Email)
	}
	if entry.ChatRoomID == nil || *entry.ChatRoomID != submitted.ChatRoomID {
		t.Error("entry should carry the provisioned chat room id")
	}
}

func TestOrganizationPostings_Empty(t *testing.T) {
	db := newTestDB(t, "mypage_org_empty")
	svc := NewMypageService(db)
	org := createTestOrganization(t, db, "org@example.com")

	items, err := svc.OrganizationPostings(org.ID)
	if err != nil {
		t.Fatalf("OrganizationPostings failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no postings, got %d", len(items))
	}
}
