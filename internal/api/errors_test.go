package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campushub/internal/common"
	gormModels "campushub/internal/models/gorm"
	"campushub/internal/services"
	"campushub/internal/store"
)

// failingEventStore simulates a configured backend that stopped
// answering mid-flight.
type failingEventStore struct {
	store.EventStore
	err error
}

func (f *failingEventStore) ListEvents(ctx context.Context) ([]gormModels.Event, error) {
	return nil, f.err
}

func directoryWithFailingEvents(deps *Dependencies, err error) *services.DirectoryService {
	cache := common.NewCacheService(5*time.Minute, 10*time.Minute)
	failing := &failingEventStore{EventStore: deps.Stores.Events, err: err}
	return services.NewDirectoryService(
		deps.Stores.Clubs, failing, deps.Stores.Registrations, deps.Stores.Users,
		cache, 30*time.Second, nil,
	)
}

func TestListEventsHandler_RetryableBackendErrorIsBadGateway(t *testing.T) {
	deps := setupTestDeps(t)
	deps.Services.Directory = directoryWithFailingEvents(deps,
		store.NewBackendError("events.list", errors.New("connection refused")))

	handler := NewHandlers(deps).ListEvents()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/events", nil))

	if rr.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 for a retryable backend failure, got %d", rr.Code)
	}
}

func TestListEventsHandler_PermanentBackendErrorIsInternal(t *testing.T) {
	deps := setupTestDeps(t)
	deps.Services.Directory = directoryWithFailingEvents(deps,
		&store.BackendError{Op: "events.list", Err: errors.New("relation does not exist"), Retryable: false})

	handler := NewHandlers(deps).ListEvents()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/events", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for a permanent backend failure, got %d", rr.Code)
	}
}
