package entities

import "time"

type ReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	SellerID uint64
}

// RevenueReportItem is a revenue row joined with the seller and the sold
// upload, shaped for export.
type RevenueReportItem struct {
	RevenueID   uint64
	SellerID    uint64
	SellerName  string
	SellerEmail string
	OrderID     uint64
	UploadTitle string
	Amount      float64
	CreatedAt   time.Time
}
