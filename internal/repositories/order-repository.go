package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/infrastructure/bd"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
	"marketplace-system/pkg/utils"
)

const (
	orderTable   = "orders"
	orderFields  = "id, buyer_id, upload_id, amount, status, paid_at, created_at, updated_at"
	revenueTable = "revenues"
)

var OrderResource = bd.ResourceConfig{
	Table:   orderTable,
	Columns: []string{"id", "buyer_id", "upload_id", "amount", "status", "paid_at", "created_at", "updated_at"},
	ColumnMap: map[string]string{
		"id":         "id",
		"buyer_id":   "buyer_id",
		"upload_id":  "upload_id",
		"amount":     "amount",
		"status":     "status",
		"created_at": "created_at",
	},
	TextColumns: map[string]bool{},
}

var RevenueResource = bd.ResourceConfig{
	Table:   revenueTable,
	Columns: []string{"id", "seller_id", "order_id", "amount", "created_at"},
	ColumnMap: map[string]string{
		"id":         "id",
		"seller_id":  "seller_id",
		"order_id":   "order_id",
		"amount":     "amount",
		"created_at": "created_at",
	},
	TextColumns: map[string]bool{},
}

type dbOrder struct {
	ID        uint64
	BuyerID   uint64
	UploadID  uint64
	Amount    float64
	Status    string
	PaidAt    sql.NullTime
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbOrder) ToEntity() *entities.Order {
	o := &entities.Order{
		ID:        db.ID,
		BuyerID:   db.BuyerID,
		UploadID:  db.UploadID,
		Amount:    db.Amount,
		Status:    db.Status,
		CreatedAt: db.CreatedAt,
	}
	if db.PaidAt.Valid {
		o.PaidAt = &db.PaidAt.Time
	}
	if db.UpdatedAt.Valid {
		o.UpdatedAt = &db.UpdatedAt.Time
	}
	return o
}

type OrderRepositoryInterface interface {
	GetOrders(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindByID(ctx context.Context, id uint64) (*entities.Order, error)
	Create(ctx context.Context, order *entities.Order) (uint64, error)
	Delete(ctx context.Context, id uint64) error
	MarkPaid(ctx context.Context, orderID, sellerID uint64) error
	GetRevenues(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	SumRevenueBySeller(ctx context.Context) (map[string]float64, error)
	CountByStatus(ctx context.Context) (map[string]uint64, error)
}

type orderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) OrderRepositoryInterface {
	return &orderRepository{storage: storage, logger: logger}
}

func (r *orderRepository) GetOrders(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	rows, total, err := ListResource(ctx, r.storage, OrderResource, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult{
		List:       rows,
		Pagination: types.ComputePagination(spec.Page, spec.Limit, total),
	}, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint64) (*entities.Order, error) {
	query := "SELECT " + orderFields + " FROM " + orderTable + " WHERE id = $1"
	var row dbOrder
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.BuyerID, &row.UploadID, &row.Amount, &row.Status,
		&row.PaidAt, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *orderRepository) Create(ctx context.Context, order *entities.Order) (uint64, error) {
	query := `
		INSERT INTO orders (buyer_id, upload_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		order.BuyerID, order.UploadID, order.Amount, order.Status,
	).Scan(&id)
	if err != nil {
		r.logger.Error("failed to insert order", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *orderRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkPaid flips the order to paid and records the revenue entry in one
// transaction, so a paid order always has its revenue row.
func (r *orderRepository) MarkPaid(ctx context.Context, orderID, sellerID uint64) error {
	return pgx.BeginFunc(ctx, r.storage, func(tx pgx.Tx) error {
		var amount float64
		err := tx.QueryRow(ctx, `
			UPDATE orders SET status = $1, paid_at = NOW(), updated_at = NOW()
			WHERE id = $2 AND status = $3
			RETURNING amount`,
			entities.OrderStatusPaid, orderID, entities.OrderStatusCreated,
		).Scan(&amount)
		if err != nil {
			if isNoRows(err) {
				return apperrors.ErrInvalidTransition
			}
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO revenues (seller_id, order_id, amount)
			VALUES ($1, $2, $3)`,
			sellerID, orderID, amount,
		)
		return err
	})
}

func (r *orderRepository) GetRevenues(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	rows, total, err := ListResource(ctx, r.storage, RevenueResource, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult{
		List:       rows,
		Pagination: types.ComputePagination(spec.Page, spec.Limit, total),
	}, nil
}

func (r *orderRepository) SumRevenueBySeller(ctx context.Context) (map[string]float64, error) {
	return SumGrouped(ctx, r.storage, revenueTable, "amount", "seller_id")
}

func (r *orderRepository) CountByStatus(ctx context.Context) (map[string]uint64, error) {
	return CountGrouped(ctx, r.storage, orderTable, "status")
}

func OrderEntityToDTO(o *entities.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:        o.ID,
		BuyerID:   o.BuyerID,
		UploadID:  o.UploadID,
		Amount:    o.Amount,
		Status:    o.Status,
		PaidAt:    utils.TimePtrToString(o.PaidAt),
		CreatedAt: o.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.TimePtrToString(o.UpdatedAt),
	}
}
