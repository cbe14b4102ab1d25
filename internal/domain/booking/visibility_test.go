package booking

import (
	"testing"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

func viewer(id string, role user.Role) user.User {
	companyID := "c1"
	return user.User{ID: id, CompanyID: &companyID, Role: role}
}

func TestProjectForOwner(t *testing.T) {
	b := Booking{
		ID:             "b1",
		Title:          "Quarterly review",
		StartTime:      at(9),
		EndTime:        at(10),
		RoomID:         "r1",
		OrganizerName:  "Alice",
		OrganizerEmail: "alice@acme.com",
		Visibility:     VisibilityPrivate,
		UserID:         "u1",
	}

	view := b.ProjectFor(viewer("u1", user.RoleEmployee))
	if view.Title != "Quarterly review" {
		t.Errorf("owner view title = %q", view.Title)
	}
	if view.OrganizerName == nil || *view.OrganizerName != "Alice" {
		t.Error("owner view should carry the organizer")
	}
	if !view.CanEdit {
		t.Error("owner can edit their own booking")
	}
}

func TestProjectForRedactsPrivate(t *testing.T) {
	b := Booking{
		ID:             "b1",
		Title:          "Board meeting",
		StartTime:      at(9),
		EndTime:        at(10),
		RoomID:         "r1",
		OrganizerName:  "Alice",
		OrganizerEmail: "alice@acme.com",
		Visibility:     VisibilityPrivate,
		UserID:         "u1",
	}

	view := b.ProjectFor(viewer("u2", user.RoleEmployee))
	if view.Title != RedactedTitle {
		t.Errorf("redacted title = %q, want %q", view.Title, RedactedTitle)
	}
	if view.OrganizerName != nil || view.OrganizerEmail != nil {
		t.Error("redacted view must not carry the organizer")
	}
	if view.CanEdit {
		t.Error("redacted view is never editable")
	}
	// The slot itself stays visible
	if view.StartTime == "" || view.EndTime == "" || view.RoomID != "r1" {
		t.Error("redacted view keeps the time slot and room")
	}
}

func TestProjectForAdminEditsCompanyBookings(t *testing.T) {
	b := Booking{
		ID:         "b1",
		Title:      "Standup",
		StartTime:  at(9),
		EndTime:    at(10),
		Visibility: VisibilityOwnerCompany,
		UserID:     "u1",
	}

	adminView := b.ProjectFor(viewer("u9", user.RoleAdmin))
	if !adminView.CanEdit {
		t.Error("admin can edit visible bookings")
	}

	peerView := b.ProjectFor(viewer("u2", user.RoleEmployee))
	if peerView.CanEdit {
		t.Error("a peer cannot edit someone else's booking")
	}
	if peerView.Title != "Standup" {
		t.Error("non-private bookings keep their title for peers")
	}
}

func TestFilterForViewer(t *testing.T) {
	bookings := []Booking{
		{ID: "b1", Title: "Mine", Visibility: VisibilityPrivate, UserID: "u1", StartTime: at(9), EndTime: at(10)},
		{ID: "b2", Title: "Theirs", Visibility: VisibilityPrivate, UserID: "u2", StartTime: at(11), EndTime: at(12)},
	}

	views := FilterForViewer(viewer("u1", user.RoleEmployee), bookings)
	if len(views) != 2 {
		t.Fatalf("FilterForViewer() returned %d views, want 2", len(views))
	}
	if views[0].Title != "Mine" {
		t.Errorf("own booking title = %q", views[0].Title)
	}
	if views[1].Title != RedactedTitle {
		t.Errorf("foreign private booking title = %q, want %q", views[1].Title, RedactedTitle)
	}
}
