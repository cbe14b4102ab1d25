package company

import "errors"

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyDomainExists  = errors.New("company domain already registered")
	ErrInvalidCompanyDomain = errors.New("invalid company domain format")
	ErrInvalidCompanyName   = errors.New("company name cannot be empty")
	ErrDomainMismatch       = errors.New("email domain must match company domain")
)
