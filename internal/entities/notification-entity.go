package entities

import "time"

const (
	NotificationOrderPaid        = "order_paid"
	NotificationMissionApplied   = "mission_applied"
	NotificationMissionAccepted  = "mission_accepted"
	NotificationMissionStarted   = "mission_started"
	NotificationMissionCompleted = "mission_completed"
	NotificationUploadReviewed   = "upload_reviewed"
)

type Notification struct {
	ID          uint64
	RecipientID uint64
	Type        string
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}
