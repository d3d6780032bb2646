package dto

type NotificationDTO struct {
	ID          uint64 `json:"id"`
	RecipientID uint64 `json:"recipient_id"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}
