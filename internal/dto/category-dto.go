package dto

import "github.com/aarondl/null/v8"

type CategoryDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type CreateCategoryDTO struct {
	Name string `json:"name" validate:"required,min=2,max=80"`
	Slug string `json:"slug" validate:"required,slug"`
}

type UpdateCategoryDTO struct {
	Name null.String `json:"name"`
	Slug null.String `json:"slug" validate:"omitempty,slug"`
}
