package dto

import "github.com/aarondl/null/v8"

type UploadDTO struct {
	ID          uint64  `json:"id"`
	OwnerID     uint64  `json:"owner_id"`
	CategoryID  uint64  `json:"category_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Tags        string  `json:"tags"`
	Price       float64 `json:"price"`
	FilePath    string  `json:"file_path"`
	PreviewPath *string `json:"preview_path,omitempty"`
	Status      string  `json:"status"`
	IsFeatured  bool    `json:"is_featured"`
	Downloads   uint64  `json:"downloads"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type CreateUploadDTO struct {
	Title       string  `json:"title" validate:"required,min=3,max=160"`
	Description string  `json:"description" validate:"required,min=10"`
	Tags        string  `json:"tags" validate:"omitempty,max=255"`
	CategoryID  uint64  `json:"category_id" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type UpdateUploadDTO struct {
	Title       null.String  `json:"title"`
	Description null.String  `json:"description"`
	Tags        null.String  `json:"tags"`
	CategoryID  null.Uint64  `json:"category_id"`
	Price       null.Float64 `json:"price"`
}

type ReviewUploadDTO struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
