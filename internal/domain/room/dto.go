package room

import "github.com/boardroom-booker/booker-backend-go/internal/pkg/validator"

type CreateRoomRequest struct {
	Name                string   `json:"name"`
	Description         *string  `json:"description,omitempty"`
	Capacity            *int     `json:"capacity,omitempty"`
	RoomType            *string  `json:"room_type,omitempty"`
	Location            *string  `json:"location,omitempty"`
	Equipment           []string `json:"equipment,omitempty"`
	Status              string   `json:"status,omitempty"`
	AccessLevel         string   `json:"access_level,omitempty"`
	OperatingHoursStart *string  `json:"operating_hours_start,omitempty"`
	OperatingHoursEnd   *string  `json:"operating_hours_end,omitempty"`
	VisibilityType      string   `json:"visibility_type,omitempty"`
	VisibleCompanies    []string `json:"visible_companies,omitempty"`
}

func (r *CreateRoomRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Capacity != nil && *r.Capacity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be positive",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(StatusAvailable), string(StatusMaintenance), string(StatusOutOfService),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of available, maintenance, out_of_service",
		})
	}

	if r.AccessLevel != "" && !validator.IsInSlice(r.AccessLevel, []string{
		string(AccessAll), string(AccessManagersOnly), string(AccessOwnersOnly),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_level",
			Message: "access_level must be one of all, managers_only, owners_only",
		})
	}

	if r.VisibilityType != "" && !validator.IsInSlice(r.VisibilityType, []string{
		string(VisibilityCompany), string(VisibilityPublic), string(VisibilitySpecificCompanies),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "visibility_type",
			Message: "visibility_type must be one of company, public, specific_companies",
		})
	}

	if r.VisibilityType == string(VisibilitySpecificCompanies) && len(r.VisibleCompanies) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "visible_companies",
			Message: "visible_companies is required for specific_companies visibility",
		})
	}

	if r.OperatingHoursStart != nil && !validator.IsValidTimeOfDay(*r.OperatingHoursStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "operating_hours_start",
			Message: "operating_hours_start must be HH:MM",
		})
	}

	if r.OperatingHoursEnd != nil && !validator.IsValidTimeOfDay(*r.OperatingHoursEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "operating_hours_end",
			Message: "operating_hours_end must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRoomRequest updates room fields; nil means leave unchanged
type UpdateRoomRequest struct {
	Name                *string   `json:"name,omitempty"`
	Description         *string   `json:"description,omitempty"`
	Capacity            *int      `json:"capacity,omitempty"`
	RoomType            *string   `json:"room_type,omitempty"`
	Location            *string   `json:"location,omitempty"`
	Equipment           *[]string `json:"equipment,omitempty"`
	Status              *string   `json:"status,omitempty"`
	AccessLevel         *string   `json:"access_level,omitempty"`
	OperatingHoursStart *string   `json:"operating_hours_start,omitempty"`
	OperatingHoursEnd   *string   `json:"operating_hours_end,omitempty"`
	VisibilityType      *string   `json:"visibility_type,omitempty"`
	VisibleCompanies    *[]string `json:"visible_companies,omitempty"`
}

func (r *UpdateRoomRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Capacity != nil && *r.Capacity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be positive",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusAvailable), string(StatusMaintenance), string(StatusOutOfService),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of available, maintenance, out_of_service",
		})
	}

	if r.AccessLevel != nil && !validator.IsInSlice(*r.AccessLevel, []string{
		string(AccessAll), string(AccessManagersOnly), string(AccessOwnersOnly),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_level",
			Message: "access_level must be one of all, managers_only, owners_only",
		})
	}

	if r.VisibilityType != nil && !validator.IsInSlice(*r.VisibilityType, []string{
		string(VisibilityCompany), string(VisibilityPublic), string(VisibilitySpecificCompanies),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "visibility_type",
			Message: "visibility_type must be one of company, public, specific_companies",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RoomResponse struct {
	ID                  string   `json:"id"`
	CompanyID           string   `json:"company_id"`
	Name                string   `json:"name"`
	Description         *string  `json:"description,omitempty"`
	Capacity            *int     `json:"capacity,omitempty"`
	RoomType            *string  `json:"room_type,omitempty"`
	Location            *string  `json:"location,omitempty"`
	Equipment           []string `json:"equipment,omitempty"`
	Status              string   `json:"status"`
	AccessLevel         string   `json:"access_level"`
	OperatingHoursStart *string  `json:"operating_hours_start,omitempty"`
	OperatingHoursEnd   *string  `json:"operating_hours_end,omitempty"`
	VisibilityType      string   `json:"visibility_type"`
	VisibleCompanies    []string `json:"visible_companies,omitempty"`
	IsPublic            bool     `json:"is_public"` // legacy alias: visibility_type == public
}
