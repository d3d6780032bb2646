package entities

import "time"

const (
	UploadStatusPending  = "pending"
	UploadStatusApproved = "approved"
	UploadStatusRejected = "rejected"
)

type Upload struct {
	ID          uint64
	OwnerID     uint64
	CategoryID  uint64
	Title       string
	Description string
	Tags        string
	Price       float64
	FilePath    string
	PreviewPath *string
	Status      string
	IsFeatured  bool
	Downloads   uint64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func IsValidUploadStatus(status string) bool {
	switch status {
	case UploadStatusPending, UploadStatusApproved, UploadStatusRejected:
		return true
	}
	return false
}
