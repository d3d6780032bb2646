package entities

import "time"

const (
	RoleUser         = "user"
	RolePhotographer = "photographer"
	RoleAdmin        = "admin"
)

type User struct {
	ID           uint64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	AvatarPath   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
