package dto

type OrderDTO struct {
	ID        uint64  `json:"id"`
	BuyerID   uint64  `json:"buyer_id"`
	UploadID  uint64  `json:"upload_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	PaidAt    string  `json:"paid_at,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

type CreateOrderDTO struct {
	UploadID uint64 `json:"upload_id" validate:"required"`
}

type RevenueDTO struct {
	ID        uint64  `json:"id"`
	SellerID  uint64  `json:"seller_id"`
	OrderID   uint64  `json:"order_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type DownloadDTO struct {
	FilePath string `json:"file_path"`
}
