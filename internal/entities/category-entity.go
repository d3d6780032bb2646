package entities

import "time"

type Category struct {
	ID        uint64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
