package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"marketplace-system/internal/entities"
)

type ReportRepositoryInterface interface {
	GetRevenueReport(ctx context.Context, filter entities.ReportFilter) ([]entities.RevenueReportItem, error)
}

type reportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &reportRepository{storage: storage, logger: logger}
}

func (r *reportRepository) GetRevenueReport(ctx context.Context, filter entities.ReportFilter) ([]entities.RevenueReportItem, error) {
	builder := sq.Select(
		"r.id",
		"r.seller_id",
		"u.first_name || ' ' || u.last_name AS seller_name",
		"u.email",
		"r.order_id",
		"up.title",
		"r.amount",
		"r.created_at",
	).
		From("revenues r").
		Join("users u ON u.id = r.seller_id").
		Join("orders o ON o.id = r.order_id").
		Join("uploads up ON up.id = o.upload_id").
		OrderBy("r.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.SellerID != 0 {
		builder = builder.Where(sq.Eq{"r.seller_id": filter.SellerID})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"r.created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"r.created_at": *filter.DateTo})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query revenue report", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []entities.RevenueReportItem
	for rows.Next() {
		var item entities.RevenueReportItem
		if err := rows.Scan(
			&item.RevenueID, &item.SellerID, &item.SellerName, &item.SellerEmail,
			&item.OrderID, &item.UploadTitle, &item.Amount, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
