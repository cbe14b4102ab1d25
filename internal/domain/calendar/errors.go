package calendar

import "errors"

var (
	ErrConnectionNotFound  = errors.New("calendar connection not found")
	ErrProviderNotEnabled  = errors.New("calendar provider is not configured")
	ErrInvalidOAuthState   = errors.New("oauth state does not match")
	ErrUnsupportedProvider = errors.New("unsupported calendar provider")
)
