package dto

type StatsDTO struct {
	UsersByRole       map[string]uint64  `json:"users_by_role"`
	UploadsByStatus   map[string]uint64  `json:"uploads_by_status"`
	UploadsByCategory map[string]uint64  `json:"uploads_by_category"`
	OrdersByStatus    map[string]uint64  `json:"orders_by_status"`
	MissionsByStatus  map[string]uint64  `json:"missions_by_status"`
	RevenueBySeller   map[string]float64 `json:"revenue_by_seller"`
}

type RevenueReportItemDTO struct {
	RevenueID   uint64  `json:"revenue_id"`
	SellerID    uint64  `json:"seller_id"`
	SellerName  string  `json:"seller_name"`
	SellerEmail string  `json:"seller_email"`
	OrderID     uint64  `json:"order_id"`
	UploadTitle string  `json:"upload_title"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}
