package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"campushub/internal/auth"
	"campushub/internal/constants"
	"campushub/internal/models/dtos"
	"campushub/internal/models/entities"
)

// NotificationService derives a per-identity feed from the directory
// snapshot. Nothing is stored; every call recomputes from current data.
type NotificationService struct {
	directory *DirectoryService
}

func NewNotificationService(directory *DirectoryService) *NotificationService {
	return &NotificationService{directory: directory}
}

// For builds the feed for the authenticated identity, newest first.
func (s *NotificationService) For(ctx context.Context, claims auth.UserClaims) ([]dtos.Notification, error) {
	snap, err := s.directory.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	var notifications []dtos.Notification
	if claims.IsAdmin() {
		notifications, err = s.forAdmin(ctx, snap)
	} else {
		notifications = s.forStudent(snap, claims.UserID())
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications, nil
}

func (s *NotificationService) forAdmin(ctx context.Context, snap *Snapshot) ([]dtos.Notification, error) {
	var ids []string
	for _, reg := range snap.ClubRegistrations {
		if reg.Status == constants.StatusPending {
			ids = append(ids, reg.UserID)
		}
	}
	for _, reg := range snap.EventRegistrations {
		ids = append(ids, reg.UserID)
	}
	users, err := s.directory.usersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	var out []dtos.Notification
	for _, reg := range snap.ClubRegistrations {
		if reg.Status != constants.StatusPending {
			continue
		}
		out = append(out, dtos.Notification{
			ID:        "club-" + reg.ID,
			Type:      "club_registration",
			Title:     "New Club Registration",
			Message:   fmt.Sprintf("Student %s wants to join %s", displayName(users, reg.UserID), clubName(snap, reg.ClubID)),
			Timestamp: reg.RequestedAt,
		})
	}

	for _, reg := range snap.EventRegistrations {
		out = append(out, dtos.Notification{
			ID:        "event-" + reg.ID,
			Type:      "event_registration",
			Title:     "New Event Registration",
			Message:   fmt.Sprintf("Student %s registered for %s", displayName(users, reg.UserID), eventName(snap, reg.EventID)),
			Timestamp: reg.RegisteredAt,
		})
	}
	return out, nil
}

func (s *NotificationService) forStudent(snap *Snapshot, userID string) []dtos.Notification {
	var out []dtos.Notification

	for _, reg := range snap.ClubRegistrations {
		if reg.UserID != userID {
			continue
		}

		name := clubName(snap, reg.ClubID)
		n := dtos.Notification{
			ID:        "user-club-" + reg.ID,
			Type:      "club_status",
			Title:     "Club Registration Update",
			Timestamp: reg.RequestedAt,
		}
		switch reg.Status {
		case constants.StatusApproved:
			n.Message = fmt.Sprintf("Your registration for %s has been approved!", name)
			if reg.ApprovedAt != nil {
				n.Timestamp = *reg.ApprovedAt
			}
		case constants.StatusRejected:
			n.Message = fmt.Sprintf("Your registration for %s was rejected.", name)
		default:
			n.Message = fmt.Sprintf("Your registration for %s is pending approval.", name)
		}
		out = append(out, n)
	}

	now := time.Now()
	horizon := now.Add(constants.UpcomingEventWindow)
	for _, event := range snap.Events {
		starts := event.StartsAt()
		if starts.IsZero() || starts.Before(now.Truncate(24*time.Hour)) || starts.After(horizon) {
			continue
		}
		out = append(out, dtos.Notification{
			ID:        "upcoming-" + event.ID,
			Type:      "upcoming_event",
			Title:     "Upcoming Event",
			Message:   fmt.Sprintf("%s by %s is happening soon!", event.Name, clubName(snap, event.OrganizingClubID)),
			Timestamp: event.CreatedAt,
		})
	}
	return out
}

func displayName(users map[string]entities.User, userID string) string {
	if u, ok := users[userID]; ok {
		return u.Name
	}
	return userID
}

func clubName(snap *Snapshot, clubID string) string {
	for _, club := range snap.Clubs {
		if club.ID == clubID {
			return club.Name
		}
	}
	return "Unknown Club"
}

func eventName(snap *Snapshot, eventID string) string {
	for _, event := range snap.Events {
		if event.ID == eventID {
			return event.Name
		}
	}
	return "Unknown Event"
}
