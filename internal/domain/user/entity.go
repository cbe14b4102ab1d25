package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full control over company, rooms and users
	RoleManager  Role = "manager"  // Can manage and invite employees/guests
	RoleEmployee Role = "employee" // Regular member
	RoleGuest    Role = "guest"    // Time-limited member
)

// ParseRole converts a string to a Role, rejecting unknown values
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee, RoleGuest:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID                    string
	CompanyID             *string
	Email                 string
	Name                  string
	PasswordHash          *string
	Role                  Role
	ExternalCompanyAccess *string    // second company this user may view, granted by external invitation
	ExpiresAt             *time.Time // guests only
	OAuthProvider         *string
	OAuthProviderID       *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsActive reports whether the account is usable at the given time.
// Guest accounts expire; every other role is always active.
func (u *User) IsActive(now time.Time) bool {
	if u.Role != RoleGuest {
		return true
	}
	if u.ExpiresAt == nil {
		return true
	}
	return !now.After(*u.ExpiresAt)
}

// BelongsTo reports whether the user is a member of the company
func (u *User) BelongsTo(companyID string) bool {
	return u.CompanyID != nil && *u.CompanyID == companyID
}

// CanAccessCompany reports whether the user may view the company's calendar,
// either as a member or through an external-access grant
func (u *User) CanAccessCompany(companyID string) bool {
	if u.BelongsTo(companyID) {
		return true
	}
	return u.ExternalCompanyAccess != nil && *u.ExternalCompanyAccess == companyID
}

// AccessibleCompanies lists every company whose calendar the user may view:
// their own company plus an external-access grant when present.
func (u *User) AccessibleCompanies() []string {
	var ids []string
	if u.CompanyID != nil {
		ids = append(ids, *u.CompanyID)
	}
	if u.ExternalCompanyAccess != nil && (u.CompanyID == nil || *u.ExternalCompanyAccess != *u.CompanyID) {
		ids = append(ids, *u.ExternalCompanyAccess)
	}
	return ids
}
