package booking

import (
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

// RedactedTitle replaces hidden booking titles so the slot still reads as taken
const RedactedTitle = "Unavailable"

// View is the viewer-scoped projection of a booking. Redacted views keep
// start/end/room so the calendar shows the slot as occupied.
type View struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	RoomID         string  `json:"room_id"`
	OrganizerName  *string `json:"organizer_name,omitempty"`
	OrganizerEmail *string `json:"organizer_email,omitempty"`
	Visibility     string  `json:"visibility"`
	IsPublic       bool    `json:"is_public"`
	CanEdit        bool    `json:"can_edit"`
}

// visibleTo reports whether the viewer sees the booking's full details
func (b *Booking) visibleTo(viewer user.User) bool {
	if b.UserID == viewer.ID {
		return true
	}
	return b.IsPublic()
}

// canEdit: owner or an admin
func (b *Booking) canEdit(viewer user.User) bool {
	return b.UserID == viewer.ID || viewer.Role == user.RoleAdmin
}

// ProjectFor builds the viewer-scoped view of a single booking
func (b *Booking) ProjectFor(viewer user.User) View {
	view := View{
		ID:         b.ID,
		StartTime:  b.StartTime.Format("2006-01-02T15:04:05Z07:00"),
		EndTime:    b.EndTime.Format("2006-01-02T15:04:05Z07:00"),
		RoomID:     b.RoomID,
		Visibility: string(b.Visibility),
		IsPublic:   b.IsPublic(),
	}

	if !b.visibleTo(viewer) {
		view.Title = RedactedTitle
		view.CanEdit = false
		return view
	}

	organizerName := b.OrganizerName
	organizerEmail := b.OrganizerEmail
	view.Title = b.Title
	view.OrganizerName = &organizerName
	view.OrganizerEmail = &organizerEmail
	view.CanEdit = b.canEdit(viewer)
	return view
}

// FilterForViewer projects a feed of bookings for one viewer
func FilterForViewer(viewer user.User, bookings []Booking) []View {
	views := make([]View, 0, len(bookings))
	for i := range bookings {
		views = append(views, bookings[i].ProjectFor(viewer))
	}
	return views
}
