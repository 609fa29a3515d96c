package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campushub/internal/common"
	"campushub/internal/constants"
	"campushub/internal/db/repositories"
	"campushub/internal/models/dtos"
	"campushub/internal/models/entities"
	gormModels "campushub/internal/models/gorm"
	"campushub/internal/store"
	"campushub/internal/store/memory"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Each pooled connection to a ":memory:" DSN gets its own empty
	// database, so concurrent queries must share a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access underlying database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.Club{},
		&gormModels.Event{},
		&gormModels.EventRegistration{},
		&gormModels.ClubRegistration{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

type directoryFixture struct {
	db      *gorm.DB
	users   *memory.Store
	service *DirectoryService
	club    gormModels.Club
	event   gormModels.Event
	student entities.User
}

func setupDirectory(t *testing.T) *directoryFixture {
	db := setupTestDB(t)
	users := memory.NewStore()

	club := gormModels.Club{Name: "CCC", Description: "Computer Coding Club"}
	if err := db.Create(&club).Error; err != nil {
		t.Fatalf("Failed to create club: %v", err)
	}

	event := gormModels.Event{
		Name:             "Coding Championship",
		OrganizingClubID: club.ID,
		Venue:            "Computer Lab A",
		Date:             time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		Time:             "10:00",
		CreatedBy:        "admin-1",
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	studentNo := "STU001"
	student := entities.User{
		Email:     "john.doe@student.edu",
		Name:      "John Doe",
		StudentID: &studentNo,
		Role:      constants.RoleStudent,
	}
	if err := users.Create(context.Background(), &student); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	cache := common.NewCacheService(5*time.Minute, 10*time.Minute)
	service := NewDirectoryService(
		repositories.NewClubRepository(db),
		repositories.NewEventRepository(db),
		repositories.NewRegistrationRepository(db),
		users,
		cache,
		30*time.Second,
		nil,
	)

	return &directoryFixture{
		db:      db,
		users:   users,
		service: service,
		club:    club,
		event:   event,
		student: student,
	}
}

func TestDirectoryService_ClubRegistration_ApprovalWorkflow(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	reg, err := f.service.RegisterForClub(ctx, f.student.ID, f.club.ID)
	if err != nil {
		t.Fatalf("RegisterForClub failed: %v", err)
	}
	if reg.Status != constants.StatusPending {
		t.Errorf("Expected pending status, got %s", reg.Status)
	}
	if reg.ApprovedAt != nil {
		t.Error("Expected no approval timestamp on a new registration")
	}

	approved, err := f.service.ApproveClubRegistration(ctx, reg.ID)
	if err != nil {
		t.Fatalf("ApproveClubRegistration failed: %v", err)
	}
	if approved.Status != constants.StatusApproved {
		t.Errorf("Expected approved status, got %s", approved.Status)
	}
	if approved.ApprovedAt == nil {
		t.Error("Expected approval timestamp to be set")
	}

	// A decided registration cannot be decided again
	if _, err := f.service.ApproveClubRegistration(ctx, reg.ID); !errors.Is(err, store.ErrConflict) {
		t.Errorf("Expected ErrConflict on second approve, got %v", err)
	}
	if _, err := f.service.RejectClubRegistration(ctx, reg.ID); !errors.Is(err, store.ErrConflict) {
		t.Errorf("Expected ErrConflict on reject after approve, got %v", err)
	}
}

func TestDirectoryService_RejectClubRegistration(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	reg, err := f.service.RegisterForClub(ctx, f.student.ID, f.club.ID)
	if err != nil {
		t.Fatalf("RegisterForClub failed: %v", err)
	}

	rejected, err := f.service.RejectClubRegistration(ctx, reg.ID)
	if err != nil {
		t.Fatalf("RejectClubRegistration failed: %v", err)
	}
	if rejected.Status != constants.StatusRejected {
		t.Errorf("Expected rejected status, got %s", rejected.Status)
	}
	if rejected.ApprovedAt != nil {
		t.Error("Expected no approval timestamp on a rejection")
	}

	// A rejected student may file a fresh request
	if _, err := f.service.RegisterForClub(ctx, f.student.ID, f.club.ID); err != nil {
		t.Errorf("Expected re-application after rejection to succeed, got %v", err)
	}
}

func TestDirectoryService_ApproveUnknownRegistration(t *testing.T) {
	f := setupDirectory(t)

	_, err := f.service.ApproveClubRegistration(context.Background(), "no-such-id")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDirectoryService_RegisterForClub_UnknownClub(t *testing.T) {
	f := setupDirectory(t)

	_, err := f.service.RegisterForClub(context.Background(), f.student.ID, "no-such-club")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDirectoryService_RegisterForEvent_DuplicateIsConflict(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	if _, err := f.service.RegisterForEvent(ctx, f.student.ID, f.event.ID); err != nil {
		t.Fatalf("RegisterForEvent failed: %v", err)
	}

	_, err := f.service.RegisterForEvent(ctx, f.student.ID, f.event.ID)
	if !errors.Is(err, store.ErrConflict) {
		t.Errorf("Expected ErrConflict on duplicate registration, got %v", err)
	}
}

func TestDirectoryService_RegisterForEvent_UnknownEvent(t *testing.T) {
	f := setupDirectory(t)

	_, err := f.service.RegisterForEvent(context.Background(), f.student.ID, "no-such-event")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDirectoryService_CreateEvent(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	event, err := f.service.CreateEvent(ctx, "admin-1", dtos.CreateEventReq{
		Name:             "UI/UX Design Competition",
		OrganizingClubID: f.club.ID,
		Venue:            "Design Studio",
		Date:             "2026-11-05",
		Time:             "14:00",
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if event.ID == "" {
		t.Error("Expected an assigned event ID")
	}

	// Unknown club is rejected before anything is written
	_, err = f.service.CreateEvent(ctx, "admin-1", dtos.CreateEventReq{
		Name:             "Ghost Event",
		OrganizingClubID: "no-such-club",
		Venue:            "Nowhere",
		Date:             "2026-11-05",
		Time:             "14:00",
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown club, got %v", err)
	}
}

func TestDirectoryService_Refresh_InvalidatedOnWrite(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	snap, err := f.service.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(snap.Events) != 1 {
		t.Fatalf("Expected 1 event in snapshot, got %d", len(snap.Events))
	}

	if _, err := f.service.CreateEvent(ctx, "admin-1", dtos.CreateEventReq{
		Name:             "Hackathon",
		OrganizingClubID: f.club.ID,
		Venue:            "Auditorium",
		Date:             "2026-12-01",
		Time:             "09:00",
	}); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	snap, err = f.service.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh after write failed: %v", err)
	}
	if len(snap.Events) != 2 {
		t.Errorf("Expected the write to invalidate the snapshot, got %d events", len(snap.Events))
	}
}

func TestDirectoryService_Refresh_IdempotentWithoutWrites(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	first, err := f.service.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	second, err := f.service.Refresh(ctx)
	if err != nil {
		t.Fatalf("Second refresh failed: %v", err)
	}

	if len(first.Clubs) != len(second.Clubs) ||
		len(first.Events) != len(second.Events) ||
		len(first.EventRegistrations) != len(second.EventRegistrations) ||
		len(first.ClubRegistrations) != len(second.ClubRegistrations) {
		t.Errorf("Expected identical snapshots, got %+v then %+v", first, second)
	}
	if first.Events[0].ID != second.Events[0].ID {
		t.Errorf("Expected identical event contents across refreshes")
	}
}

func TestDirectoryService_PendingQueueAndMemberships(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	reg, err := f.service.RegisterForClub(ctx, f.student.ID, f.club.ID)
	if err != nil {
		t.Fatalf("RegisterForClub failed: %v", err)
	}

	pending, err := f.service.PendingClubRegistrations(ctx)
	if err != nil {
		t.Fatalf("PendingClubRegistrations failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("Expected 1 pending registration, got %d", len(pending))
	}
	if pending[0].StudentName != "John Doe" {
		t.Errorf("Expected joined student name, got %q", pending[0].StudentName)
	}
	if pending[0].ClubName != "CCC" {
		t.Errorf("Expected joined club name, got %q", pending[0].ClubName)
	}
	if pending[0].StudentID != "STU001" {
		t.Errorf("Expected joined student ID, got %q", pending[0].StudentID)
	}

	if _, err := f.service.ApproveClubRegistration(ctx, reg.ID); err != nil {
		t.Fatalf("ApproveClubRegistration failed: %v", err)
	}

	pending, err = f.service.PendingClubRegistrations(ctx)
	if err != nil {
		t.Fatalf("PendingClubRegistrations failed: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("Expected empty queue after decision, got %d", len(pending))
	}

	memberships, err := f.service.MembershipsFor(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("MembershipsFor failed: %v", err)
	}
	if len(memberships) != 1 {
		t.Fatalf("Expected 1 membership, got %d", len(memberships))
	}
	if memberships[0].Status != constants.StatusApproved {
		t.Errorf("Expected approved membership, got %s", memberships[0].Status)
	}
}

func TestDirectoryService_RegistrantsForEvent(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	if _, err := f.service.RegisterForEvent(ctx, f.student.ID, f.event.ID); err != nil {
		t.Fatalf("RegisterForEvent failed: %v", err)
	}

	rows, err := f.service.RegistrantsForEvent(ctx, f.event.ID)
	if err != nil {
		t.Fatalf("RegistrantsForEvent failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 registrant, got %d", len(rows))
	}
	if rows[0].Name != "John Doe" || rows[0].Email != "john.doe@student.edu" {
		t.Errorf("Expected joined identity fields, got %+v", rows[0])
	}
	if rows[0].StudentID != "STU001" {
		t.Errorf("Expected student ID, got %q", rows[0].StudentID)
	}
}

func TestDirectoryService_Overview(t *testing.T) {
	f := setupDirectory(t)
	ctx := context.Background()

	if _, err := f.service.RegisterForClub(ctx, f.student.ID, f.club.ID); err != nil {
		t.Fatalf("RegisterForClub failed: %v", err)
	}
	if _, err := f.service.RegisterForEvent(ctx, f.student.ID, f.event.ID); err != nil {
		t.Fatalf("RegisterForEvent failed: %v", err)
	}

	overview, err := f.service.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}

	if overview.Clubs != 1 || overview.Events != 1 {
		t.Errorf("Unexpected counts: %+v", overview)
	}
	if overview.EventRegistrations != 1 || overview.ClubRegistrations != 1 {
		t.Errorf("Unexpected registration counts: %+v", overview)
	}
	if overview.PendingApprovals != 1 {
		t.Errorf("Expected 1 pending approval, got %d", overview.PendingApprovals)
	}
}
