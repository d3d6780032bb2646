package dto

import "github.com/aarondl/null/v8"

type MissionDTO struct {
	ID          uint64  `json:"id"`
	ClientID    uint64  `json:"client_id"`
	AssigneeID  *uint64 `json:"assignee_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Deadline    string  `json:"deadline,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type CreateMissionDTO struct {
	Title       string  `json:"title" validate:"required,min=3,max=160"`
	Description string  `json:"description" validate:"required,min=10"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
	Deadline    string  `json:"deadline" validate:"omitempty"`
}

type UpdateMissionDTO struct {
	Title       null.String  `json:"title"`
	Description null.String  `json:"description"`
	Budget      null.Float64 `json:"budget"`
	Deadline    null.String  `json:"deadline"`
}

type AcceptApplicantDTO struct {
	ApplicantID uint64 `json:"applicant_id" validate:"required"`
}

type MissionApplicantDTO struct {
	MissionID uint64 `json:"mission_id"`
	UserID    uint64 `json:"user_id"`
	AppliedAt string `json:"applied_at"`
}
