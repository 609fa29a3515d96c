// Package memory is the fallback store used when no Postgres backend is
// configured. All collections live behind one mutex; every operation
// succeeds by construction, so fallback mode never surfaces a
// BackendError.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"campushub/internal/constants"
	"campushub/internal/models/entities"
	gormModels "campushub/internal/models/gorm"
	"campushub/internal/store"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	users              []entities.User
	clubs              []gormModels.Club
	events             []gormModels.Event
	eventRegistrations []gormModels.EventRegistration
	clubRegistrations  []gormModels.ClubRegistration
}

var (
	_ store.UserStore         = (*Store)(nil)
	_ store.ClubStore         = (*Store)(nil)
	_ store.EventStore        = (*Store)(nil)
	_ store.RegistrationStore = (*Store)(nil)
)

// NewStore returns an empty store. Most callers want NewSeededStore.
func NewStore() *Store {
	return &Store{}
}

/* ---------- UserStore ---------- */

func (s *Store) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetByID(ctx context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var users []entities.User
	for i := range s.users {
		if _, ok := want[s.users[i].ID]; ok {
			users = append(users, s.users[i])
		}
	}
	return users, nil
}

func (s *Store) Create(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users = append(s.users, *user)
	return nil
}

/* ---------- ClubStore ---------- */

func (s *Store) ListClubs(ctx context.Context) ([]gormModels.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clubs := make([]gormModels.Club, len(s.clubs))
	copy(clubs, s.clubs)
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].Name < clubs[j].Name })
	return clubs, nil
}

func (s *Store) GetClub(ctx context.Context, id string) (*gormModels.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.clubs {
		if s.clubs[i].ID == id {
			c := s.clubs[i]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

/* ---------- EventStore ---------- */

func (s *Store) ListEvents(ctx context.Context) ([]gormModels.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]gormModels.Event, len(s.events))
	copy(events, s.events)
	for i := range events {
		events[i].OrganizingClub = s.clubByIDLocked(events[i].OrganizingClubID)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	return events, nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (*gormModels.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			e.OrganizingClub = s.clubByIDLocked(e.OrganizingClubID)
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateEvent(ctx context.Context, event *gormModels.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.CreatedAt = time.Now()

	stored := *event
	stored.OrganizingClub = nil
	s.events = append(s.events, stored)

	event.OrganizingClub = s.clubByIDLocked(event.OrganizingClubID)
	return nil
}

/* ---------- RegistrationStore ---------- */

func (s *Store) ListEventRegistrations(ctx context.Context) ([]gormModels.EventRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	regs := make([]gormModels.EventRegistration, len(s.eventRegistrations))
	copy(regs, s.eventRegistrations)
	sort.Slice(regs, func(i, j int) bool { return regs[i].RegisteredAt.After(regs[j].RegisteredAt) })
	return regs, nil
}

func (s *Store) ListEventRegistrationsByEvent(ctx context.Context, eventID string) ([]gormModels.EventRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var regs []gormModels.EventRegistration
	for i := range s.eventRegistrations {
		if s.eventRegistrations[i].EventID == eventID {
			regs = append(regs, s.eventRegistrations[i])
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].RegisteredAt.Before(regs[j].RegisteredAt) })
	return regs, nil
}

func (s *Store) CreateEventRegistration(ctx context.Context, reg *gormModels.EventRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.eventRegistrations {
		if s.eventRegistrations[i].UserID == reg.UserID && s.eventRegistrations[i].EventID == reg.EventID {
			return store.ErrConflict
		}
	}

	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	reg.RegisteredAt = time.Now()
	s.eventRegistrations = append(s.eventRegistrations, *reg)
	return nil
}

func (s *Store) ListClubRegistrations(ctx context.Context) ([]gormModels.ClubRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clubRegistrationsLocked(func(gormModels.ClubRegistration) bool { return true }), nil
}

func (s *Store) ListClubRegistrationsByUser(ctx context.Context, userID string) ([]gormModels.ClubRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clubRegistrationsLocked(func(r gormModels.ClubRegistration) bool { return r.UserID == userID }), nil
}

func (s *Store) ListPendingClubRegistrations(ctx context.Context) ([]gormModels.ClubRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clubRegistrationsLocked(func(r gormModels.ClubRegistration) bool { return r.Status == constants.StatusPending }), nil
}

func (s *Store) GetClubRegistration(ctx context.Context, id string) (*gormModels.ClubRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.clubRegistrations {
		if s.clubRegistrations[i].ID == id {
			r := s.clubRegistrations[i]
			r.Club = s.clubByIDLocked(r.ClubID)
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateClubRegistration(ctx context.Context, reg *gormModels.ClubRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.Status == "" {
		reg.Status = constants.StatusPending
	}
	reg.RequestedAt = time.Now()

	stored := *reg
	stored.Club = nil
	s.clubRegistrations = append(s.clubRegistrations, stored)

	reg.Club = s.clubByIDLocked(reg.ClubID)
	return nil
}

func (s *Store) SetClubRegistrationStatus(ctx context.Context, id string, status constants.RegistrationStatus, approvedAt *time.Time) (*gormModels.ClubRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clubRegistrations {
		if s.clubRegistrations[i].ID != id {
			continue
		}
		if s.clubRegistrations[i].Status != constants.StatusPending {
			return nil, store.ErrConflict
		}
		s.clubRegistrations[i].Status = status
		s.clubRegistrations[i].ApprovedAt = approvedAt

		r := s.clubRegistrations[i]
		r.Club = s.clubByIDLocked(r.ClubID)
		return &r, nil
	}
	return nil, store.ErrNotFound
}

/* ---------- helpers ---------- */

func (s *Store) clubByIDLocked(id string) *gormModels.Club {
	for i := range s.clubs {
		if s.clubs[i].ID == id {
			c := s.clubs[i]
			return &c
		}
	}
	return nil
}

func (s *Store) clubRegistrationsLocked(keep func(gormModels.ClubRegistration) bool) []gormModels.ClubRegistration {
	var regs []gormModels.ClubRegistration
	for i := range s.clubRegistrations {
		if keep(s.clubRegistrations[i]) {
			r := s.clubRegistrations[i]
			r.Club = s.clubByIDLocked(r.ClubID)
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].RequestedAt.Before(regs[j].RequestedAt) })
	return regs
}
