package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campushub/internal/common"
	"campushub/internal/constants"
	"campushub/internal/logging"
	"campushub/internal/metrics"
	"campushub/internal/models/dtos"
	"campushub/internal/models/entities"
	gormModels "campushub/internal/models/gorm"
	"campushub/internal/store"

	"golang.org/x/sync/errgroup"
)

// Snapshot is one coherent read of all four collections, the unit the
// original client refreshed on page load.
type Snapshot struct {
	Clubs              []gormModels.Club              `json:"clubs"`
	Events             []gormModels.Event             `json:"events"`
	EventRegistrations []gormModels.EventRegistration `json:"event_registrations"`
	ClubRegistrations  []gormModels.ClubRegistration  `json:"club_registrations"`
}

// DirectoryService is the domain data store: clubs, events and both
// registration collections, plus the approval workflow over club
// registrations. Reads go through a short-lived cached snapshot; every
// successful write invalidates it.
type DirectoryService struct {
	clubs       store.ClubStore
	events      store.EventStore
	regs        store.RegistrationStore
	users       store.UserStore
	cache       common.CacheInterface
	snapshotTTL time.Duration
	metrics     *metrics.MetricsRegistry
}

func NewDirectoryService(
	clubs store.ClubStore,
	events store.EventStore,
	regs store.RegistrationStore,
	users store.UserStore,
	cache common.CacheInterface,
	snapshotTTL time.Duration,
	m *metrics.MetricsRegistry,
) *DirectoryService {
	return &DirectoryService{
		clubs:       clubs,
		events:      events,
		regs:        regs,
		users:       users,
		cache:       cache,
		snapshotTTL: snapshotTTL,
		metrics:     m,
	}
}

// Refresh returns the current snapshot, serving the cached copy when it
// is still fresh.
func (s *DirectoryService) Refresh(ctx context.Context) (*Snapshot, error) {
	key := string(constants.CacheKeySnapshot)

	if val, found := s.cache.Get(key); found {
		if raw, ok := val.(string); ok {
			var snap Snapshot
			if err := json.Unmarshal([]byte(raw), &snap); err == nil {
				s.countSnapshot("hit")
				return &snap, nil
			}
		}
	}
	s.countSnapshot("miss")

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(snap); err == nil {
		s.cache.Set(key, string(data), s.snapshotTTL)
	}
	if s.metrics != nil {
		s.metrics.SnapshotReloads.Inc()
	}
	return snap, nil
}

// loadSnapshot fans out across the four collections.
func (s *DirectoryService) loadSnapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		clubs, err := s.clubs.ListClubs(gctx)
		snap.Clubs = clubs
		return err
	})
	g.Go(func() error {
		events, err := s.events.ListEvents(gctx)
		snap.Events = events
		return err
	})
	g.Go(func() error {
		regs, err := s.regs.ListEventRegistrations(gctx)
		snap.EventRegistrations = regs
		return err
	})
	g.Go(func() error {
		regs, err := s.regs.ListClubRegistrations(gctx)
		snap.ClubRegistrations = regs
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return &snap, nil
}

func (s *DirectoryService) invalidate() {
	s.cache.Delete(string(constants.CacheKeySnapshot))
}

// CreateEvent inserts a new event. Role enforcement lives in the route
// middleware; this only validates the referenced club.
func (s *DirectoryService) CreateEvent(ctx context.Context, createdBy string, req dtos.CreateEventReq) (*gormModels.Event, error) {
	if _, err := s.clubs.GetClub(ctx, req.OrganizingClubID); err != nil {
		return nil, err
	}

	event := &gormModels.Event{
		Name:             req.Name,
		OrganizingClubID: req.OrganizingClubID,
		Venue:            req.Venue,
		Date:             req.Date,
		Time:             req.Time,
		CreatedBy:        createdBy,
	}

	if err := s.events.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	s.invalidate()
	logging.Info("Event created", "event_id", event.ID, "club_id", event.OrganizingClubID, "created_by", createdBy)
	return event, nil
}

// RegisterForEvent records attendance intent. One registration per
// (user, event) pair; a second attempt is ErrConflict.
func (s *DirectoryService) RegisterForEvent(ctx context.Context, userID, eventID string) (*gormModels.EventRegistration, error) {
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	reg := &gormModels.EventRegistration{UserID: userID, EventID: eventID}
	if err := s.regs.CreateEventRegistration(ctx, reg); err != nil {
		return nil, err
	}

	s.invalidate()
	if s.metrics != nil {
		s.metrics.EventRegistrationsTotal.Inc()
	}
	logging.Info("Event registration created", "user_id", userID, "event_id", eventID)
	return reg, nil
}

// RegisterForClub files a membership request in state pending. Students
// may re-apply after a rejection; that files a new record.
func (s *DirectoryService) RegisterForClub(ctx context.Context, userID, clubID string) (*gormModels.ClubRegistration, error) {
	if _, err := s.clubs.GetClub(ctx, clubID); err != nil {
		return nil, err
	}

	reg := &gormModels.ClubRegistration{
		UserID: userID,
		ClubID: clubID,
		Status: constants.StatusPending,
	}
	if err := s.regs.CreateClubRegistration(ctx, reg); err != nil {
		return nil, err
	}

	s.invalidate()
	if s.metrics != nil {
		s.metrics.ClubRegistrationsTotal.Inc()
	}
	logging.Info("Club registration created", "user_id", userID, "club_id", clubID)
	return reg, nil
}

// ApproveClubRegistration transitions pending -> approved and stamps the
// approval time. A registration that was already decided is ErrConflict.
func (s *DirectoryService) ApproveClubRegistration(ctx context.Context, id string) (*gormModels.ClubRegistration, error) {
	now := time.Now()
	reg, err := s.regs.SetClubRegistrationStatus(ctx, id, constants.StatusApproved, &now)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	s.countDecision("approved")
	logging.Info("Club registration approved", "registration_id", id)
	return reg, nil
}

// RejectClubRegistration transitions pending -> rejected. approved_at
// stays empty.
func (s *DirectoryService) RejectClubRegistration(ctx context.Context, id string) (*gormModels.ClubRegistration, error) {
	reg, err := s.regs.SetClubRegistrationStatus(ctx, id, constants.StatusRejected, nil)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	s.countDecision("rejected")
	logging.Info("Club registration rejected", "registration_id", id)
	return reg, nil
}

// PendingClubRegistrations is the admin approval queue, joined with the
// requesting students' display fields.
func (s *DirectoryService) PendingClubRegistrations(ctx context.Context) ([]dtos.ClubRegistrationView, error) {
	regs, err := s.regs.ListPendingClubRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	return s.registrationViews(ctx, regs)
}

// MembershipsFor lists a student's own club registrations.
func (s *DirectoryService) MembershipsFor(ctx context.Context, userID string) ([]dtos.ClubRegistrationView, error) {
	regs, err := s.regs.ListClubRegistrationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.registrationViews(ctx, regs)
}

// RegistrantsForEvent lists an event's attendees with display fields.
func (s *DirectoryService) RegistrantsForEvent(ctx context.Context, eventID string) ([]dtos.RegistrantRow, error) {
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	regs, err := s.regs.ListEventRegistrationsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(regs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.UserID)
	}
	users, err := s.usersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]dtos.RegistrantRow, 0, len(regs))
	for _, reg := range regs {
		row := dtos.RegistrantRow{
			StudentID:    "N/A",
			Name:         "Unknown Student",
			Email:        "Unknown Email",
			RegisteredAt: reg.RegisteredAt,
		}
		if u, ok := users[reg.UserID]; ok {
			if u.StudentID != nil {
				row.StudentID = *u.StudentID
			}
			row.Name = u.Name
			row.Email = u.Email
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Overview backs the admin dashboard counters.
func (s *DirectoryService) Overview(ctx context.Context) (*dtos.Overview, error) {
	snap, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	pending := 0
	for _, reg := range snap.ClubRegistrations {
		if reg.Status == constants.StatusPending {
			pending++
		}
	}

	return &dtos.Overview{
		Clubs:              len(snap.Clubs),
		Events:             len(snap.Events),
		EventRegistrations: len(snap.EventRegistrations),
		ClubRegistrations:  len(snap.ClubRegistrations),
		PendingApprovals:   pending,
	}, nil
}

func (s *DirectoryService) registrationViews(ctx context.Context, regs []gormModels.ClubRegistration) ([]dtos.ClubRegistrationView, error) {
	if len(regs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.UserID)
	}
	users, err := s.usersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]dtos.ClubRegistrationView, 0, len(regs))
	for _, reg := range regs {
		view := dtos.ClubRegistrationView{
			ID:          reg.ID,
			UserID:      reg.UserID,
			ClubID:      reg.ClubID,
			Status:      reg.Status,
			RequestedAt: reg.RequestedAt,
			ApprovedAt:  reg.ApprovedAt,
		}
		if reg.Club != nil {
			view.ClubName = reg.Club.Name
		}
		if u, ok := users[reg.UserID]; ok {
			view.StudentName = u.Name
			view.StudentEmail = u.Email
			view.StudentID = u.StudentIDOrEmpty()
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *DirectoryService) usersByID(ctx context.Context, ids []string) (map[string]entities.User, error) {
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func (s *DirectoryService) countDecision(decision string) {
	if s.metrics != nil {
		s.metrics.ClubDecisionsTotal.WithLabelValues(decision).Inc()
	}
}

func (s *DirectoryService) countSnapshot(result string) {
	if s.metrics != nil {
		s.metrics.SnapshotCacheHit.WithLabelValues(result).Inc()
	}
}
