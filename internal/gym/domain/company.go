package domain

import "time"

// Company is the tenant every user and workout sheet belongs to. Data
// visibility is scoped by company.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
