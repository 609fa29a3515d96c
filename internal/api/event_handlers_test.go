package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campushub/internal/auth"
	"campushub/internal/constants"
	"campushub/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// Mount the event routes on a chi router so URL params resolve.
func setupEventRouter(deps *Dependencies) chi.Router {
	handlers := NewHandlers(deps)
	r := chi.NewRouter()
	r.Post("/events", handlers.CreateEvent())
	r.Post("/events/{eventID}/register", handlers.RegisterForEvent())
	r.Get("/events/{eventID}/registrations", handlers.EventRegistrants())
	r.Get("/events/{eventID}/registrations/export", handlers.ExportRegistrants())
	return r
}

func withClaims(req *http.Request, userID string, role constants.Role) *http.Request {
	claims := &auth.SessionClaims{UserUUID: userID, RoleValue: role}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func seededEventID(t *testing.T, deps *Dependencies) string {
	t.Helper()

	events, err := deps.Stores.Events.ListEvents(context.Background())
	if err != nil || len(events) == 0 {
		t.Fatalf("Expected seeded events, got %d (%v)", len(events), err)
	}
	return events[0].ID
}

func studentID(t *testing.T, deps *Dependencies) string {
	t.Helper()

	user, err := deps.Stores.Users.GetByEmail(context.Background(), "john.doe@student.edu")
	if err != nil {
		t.Fatalf("Expected seeded student: %v", err)
	}
	return user.ID
}

func TestRegisterForEventHandler_DuplicateIsConflict(t *testing.T) {
	deps := setupTestDeps(t)
	router := setupEventRouter(deps)
	eventID := seededEventID(t, deps)
	userID := studentID(t, deps)

	req := withClaims(httptest.NewRequest("POST", "/events/"+eventID+"/register", nil), userID, constants.RoleStudent)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	req = withClaims(httptest.NewRequest("POST", "/events/"+eventID+"/register", nil), userID, constants.RoleStudent)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Errorf("Expected 409 on duplicate registration, got %d", rr.Code)
	}
}

func TestRegisterForEventHandler_UnknownEvent(t *testing.T) {
	deps := setupTestDeps(t)
	router := setupEventRouter(deps)
	userID := studentID(t, deps)

	req := withClaims(httptest.NewRequest("POST", "/events/no-such-event/register", nil), userID, constants.RoleStudent)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rr.Code)
	}
}

func TestCreateEventHandler_MissingFields(t *testing.T) {
	deps := setupTestDeps(t)
	router := setupEventRouter(deps)

	body, _ := json.Marshal(dtos.CreateEventReq{Name: "Half-filled"})
	req := withClaims(httptest.NewRequest("POST", "/events", bytes.NewReader(body)), "admin-1", constants.RoleAdmin)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestExportRegistrantsHandler_Download(t *testing.T) {
	deps := setupTestDeps(t)
	router := setupEventRouter(deps)
	eventID := seededEventID(t, deps)
	userID := studentID(t, deps)

	req := withClaims(httptest.NewRequest("POST", "/events/"+eventID+"/register", nil), userID, constants.RoleStudent)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Registration failed: %d", rr.Code)
	}

	req = withClaims(httptest.NewRequest("GET", "/events/"+eventID+"/registrations/export", nil), "admin-1", constants.RoleAdmin)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected text/csv, got %q", ct)
	}
	disposition := rr.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, "_registrations.csv") {
		t.Errorf("Unexpected Content-Disposition %q", disposition)
	}
	if !strings.HasPrefix(rr.Body.String(), "Student ID,Student Name,Email") {
		t.Errorf("Unexpected CSV body %q", rr.Body.String())
	}
}

func TestExportRegistrantsHandler_EmptyEvent(t *testing.T) {
	deps := setupTestDeps(t)
	router := setupEventRouter(deps)
	eventID := seededEventID(t, deps)

	req := withClaims(httptest.NewRequest("GET", "/events/"+eventID+"/registrations/export", nil), "admin-1", constants.RoleAdmin)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an event without registrants, got %d", rr.Code)
	}
}
