package room

import "time"

// Status describes whether a room is bookable
type Status string

const (
	StatusAvailable    Status = "available"
	StatusMaintenance  Status = "maintenance"
	StatusOutOfService Status = "out_of_service"
)

// AccessLevel restricts who inside a company may book the room
type AccessLevel string

const (
	AccessAll          AccessLevel = "all"
	AccessManagersOnly AccessLevel = "managers_only"
	AccessOwnersOnly   AccessLevel = "owners_only"
)

// VisibilityType controls which companies see the room on their calendars.
// This is the canonical model; the older is_public boolean survives only as
// a derived alias (visibility == public).
type VisibilityType string

const (
	VisibilityCompany           VisibilityType = "company"
	VisibilityPublic            VisibilityType = "public"
	VisibilitySpecificCompanies VisibilityType = "specific_companies"
)

type Room struct {
	ID                  string
	CompanyID           string
	Name                string // unique per company
	Description         *string
	Capacity            *int
	RoomType            *string
	Location            *string
	Equipment           []string
	Status              Status
	AccessLevel         AccessLevel
	OperatingHoursStart *string // "15:04", nil means unrestricted
	OperatingHoursEnd   *string
	VisibilityType      VisibilityType
	VisibleCompanies    []string // only meaningful for specific_companies
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsBookable reports whether the room accepts new bookings at all
func (r *Room) IsBookable() bool {
	return r.Status == StatusAvailable
}

// VisibleToCompany reports whether a company's members may see and book the room
func (r *Room) VisibleToCompany(companyID string) bool {
	if r.CompanyID == companyID {
		return true
	}
	switch r.VisibilityType {
	case VisibilityPublic:
		return true
	case VisibilitySpecificCompanies:
		for _, id := range r.VisibleCompanies {
			if id == companyID {
				return true
			}
		}
	}
	return false
}

// VisibleToAny reports whether any of the given companies may see the room
func (r *Room) VisibleToAny(companyIDs ...string) bool {
	for _, id := range companyIDs {
		if r.VisibleToCompany(id) {
			return true
		}
	}
	return false
}

// WithinOperatingHours checks a proposed slot against the room's daily
// operating window. Rooms without a window accept any time; rooms with one
// only take slots contained in a single day.
func (r *Room) WithinOperatingHours(start, end time.Time) bool {
	if r.OperatingHoursStart == nil || r.OperatingHoursEnd == nil {
		return true
	}
	open, err := time.Parse("15:04", *r.OperatingHoursStart)
	if err != nil {
		return true
	}
	close, err := time.Parse("15:04", *r.OperatingHoursEnd)
	if err != nil {
		return true
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	openMin := open.Hour()*60 + open.Minute()
	closeMin := close.Hour()*60 + close.Minute()

	return startMin >= openMin && endMin <= closeMin
}
