package booking

import (
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/pkg/validator"
)

type CreateBookingRequest struct {
	Title      string `json:"title"`
	StartTime  string `json:"start_time"` // RFC3339
	EndTime    string `json:"end_time"`   // RFC3339
	RoomID     string `json:"room_id"`
	Visibility string `json:"visibility,omitempty"` // defaults to owner_company
	IsPublic   *bool  `json:"is_public,omitempty"`  // legacy alias, used only when visibility is absent
}

// TimeRange parses the request's start/end. Call Validate first.
func (r *CreateBookingRequest) TimeRange() (start, end time.Time) {
	start, _ = time.Parse(time.RFC3339, r.StartTime)
	end, _ = time.Parse(time.RFC3339, r.EndTime)
	return start, end
}

// ResolveVisibility picks the canonical visibility, honoring the legacy
// is_public flag only when the enum is absent.
func (r *CreateBookingRequest) ResolveVisibility() Visibility {
	if r.Visibility != "" {
		v, _ := ParseVisibility(r.Visibility)
		return v
	}
	if r.IsPublic != nil && !*r.IsPublic {
		return VisibilityPrivate
	}
	return VisibilityOwnerCompany
}

func (r *CreateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if !validator.MaxLen(r.Title, MaxTitleLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must be at most 120 characters",
		})
	}

	start, startOK := validator.IsValidDateTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an RFC3339 timestamp",
		})
	}

	end, endOK := validator.IsValidDateTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an RFC3339 timestamp",
		})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if validator.IsEmpty(r.RoomID) {
		errs = append(errs, validator.ValidationError{
			Field:   "room_id",
			Message: "room_id is required",
		})
	}

	if r.Visibility != "" {
		if _, ok := ParseVisibility(r.Visibility); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "visibility",
				Message: "visibility must be one of all_companies, owner_company, private",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateBookingRequest updates booking fields; nil means leave unchanged
type UpdateBookingRequest struct {
	Title      *string `json:"title,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	Visibility *string `json:"visibility,omitempty"`
}

func (r *UpdateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil {
		if validator.IsEmpty(*r.Title) {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title cannot be empty",
			})
		} else if !validator.MaxLen(*r.Title, MaxTitleLength) {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title must be at most 120 characters",
			})
		}
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidDateTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.Visibility != nil {
		if _, ok := ParseVisibility(*r.Visibility); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "visibility",
				Message: "visibility must be one of all_companies, owner_company, private",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConflictDetail identifies the booking that blocked a create/update
type ConflictDetail struct {
	BookingID string `json:"booking_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
