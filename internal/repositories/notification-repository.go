package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/infrastructure/bd"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
)

const (
	notificationTable  = "notifications"
	notificationFields = "id, recipient_id, type, message, is_read, created_at"
)

var NotificationResource = bd.ResourceConfig{
	Table:   notificationTable,
	Columns: []string{"id", "recipient_id", "type", "message", "is_read", "created_at"},
	ColumnMap: map[string]string{
		"id":           "id",
		"recipient_id": "recipient_id",
		"type":         "type",
		"is_read":      "is_read",
		"created_at":   "created_at",
	},
	TextColumns: map[string]bool{"type": true},
}

type NotificationRepositoryInterface interface {
	GetNotifications(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindByID(ctx context.Context, id uint64) (*entities.Notification, error)
	Create(ctx context.Context, n *entities.Notification) (uint64, error)
	Delete(ctx context.Context, id uint64) error
	ToggleRead(ctx context.Context, id uint64) (bool, error)
	MarkAllRead(ctx context.Context, recipientID uint64) (int64, error)
}

type notificationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewNotificationRepository(storage *pgxpool.Pool, logger *zap.Logger) NotificationRepositoryInterface {
	return &notificationRepository{storage: storage, logger: logger}
}

func (r *notificationRepository) GetNotifications(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	rows, total, err := ListResource(ctx, r.storage, NotificationResource, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult{
		List:       rows,
		Pagination: types.ComputePagination(spec.Page, spec.Limit, total),
	}, nil
}

func (r *notificationRepository) FindByID(ctx context.Context, id uint64) (*entities.Notification, error) {
	query := "SELECT " + notificationFields + " FROM " + notificationTable + " WHERE id = $1"
	var n entities.Notification
	var createdAt time.Time
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.RecipientID, &n.Type, &n.Message, &n.IsRead, &createdAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	n.CreatedAt = createdAt
	return &n, nil
}

func (r *notificationRepository) Create(ctx context.Context, n *entities.Notification) (uint64, error) {
	query := `
		INSERT INTO notifications (recipient_id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query, n.RecipientID, n.Type, n.Message).Scan(&id)
	if err != nil {
		r.logger.Error("failed to insert notification", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM notifications WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) ToggleRead(ctx context.Context, id uint64) (bool, error) {
	// notifications carry no updated_at, keep the toggle inline
	var value bool
	err := r.storage.QueryRow(ctx,
		"UPDATE notifications SET is_read = NOT is_read WHERE id = $1 RETURNING is_read", id,
	).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return false, apperrors.ErrNotFound
		}
		return false, err
	}
	return value, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uint64) (int64, error) {
	tag, err := r.storage.Exec(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE", recipientID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func NotificationEntityToDTO(n *entities.Notification) dto.NotificationDTO {
	return dto.NotificationDTO{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        n.Type,
		Message:     n.Message,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
}
