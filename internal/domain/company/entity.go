package company

import "time"

type Company struct {
	ID        string
	Name      string
	Domain    string // lower-cased email domain, unique system-wide
	CreatedAt time.Time
	UpdatedAt time.Time
}
