package entities

import "time"

const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
)

type Order struct {
	ID        uint64
	BuyerID   uint64
	UploadID  uint64
	Amount    float64
	Status    string
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Revenue struct {
	ID        uint64
	SellerID  uint64
	OrderID   uint64
	Amount    float64
	CreatedAt time.Time
}
