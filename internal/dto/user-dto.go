package dto

import "github.com/aarondl/null/v8"

type UserDTO struct {
	ID        uint64  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Avatar    *string `json:"avatar,omitempty"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

type CreateUserDTO struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=60"`
	LastName  string `json:"last_name" validate:"required,min=2,max=60"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strong_password"`
	Role      string `json:"role" validate:"required,oneof=user photographer admin"`
}

type UpdateUserDTO struct {
	FirstName null.String `json:"first_name" validate:"omitempty"`
	LastName  null.String `json:"last_name" validate:"omitempty"`
	Email     null.String `json:"email" validate:"omitempty"`
	Role      null.String `json:"role" validate:"omitempty"`
	Password  null.String `json:"password" validate:"omitempty"`
}
