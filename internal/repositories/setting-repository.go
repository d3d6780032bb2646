package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/utils"
)

const (
	settingTable  = "settings"
	settingFields = "id, key, value, value_type, created_at, updated_at"
)

type dbSetting struct {
	ID        uint64
	Key       string
	Value     string
	ValueType string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbSetting) ToEntity() *entities.Setting {
	s := &entities.Setting{
		ID:        db.ID,
		Key:       db.Key,
		Value:     db.Value,
		ValueType: db.ValueType,
		CreatedAt: db.CreatedAt,
	}
	if db.UpdatedAt.Valid {
		s.UpdatedAt = &db.UpdatedAt.Time
	}
	return s
}

type SettingRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.Setting, error)
	FindByKey(ctx context.Context, key string) (*entities.Setting, error)
	Create(ctx context.Context, setting *entities.Setting) (uint64, error)
	UpdateValue(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type settingRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSettingRepository(storage *pgxpool.Pool, logger *zap.Logger) SettingRepositoryInterface {
	return &settingRepository{storage: storage, logger: logger}
}

func (r *settingRepository) GetAll(ctx context.Context) ([]entities.Setting, error) {
	rows, err := r.storage.Query(ctx, "SELECT "+settingFields+" FROM "+settingTable+" ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []entities.Setting
	for rows.Next() {
		var row dbSetting
		if err := rows.Scan(&row.ID, &row.Key, &row.Value, &row.ValueType, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, *row.ToEntity())
	}
	return settings, rows.Err()
}

func (r *settingRepository) FindByKey(ctx context.Context, key string) (*entities.Setting, error) {
	query := "SELECT " + settingFields + " FROM " + settingTable + " WHERE key = $1"
	var row dbSetting
	err := r.storage.QueryRow(ctx, query, key).Scan(
		&row.ID, &row.Key, &row.Value, &row.ValueType, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *settingRepository) Create(ctx context.Context, setting *entities.Setting) (uint64, error) {
	query := `
		INSERT INTO settings (key, value, value_type)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query, setting.Key, setting.Value, setting.ValueType).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrBadRequest
		}
		r.logger.Error("failed to insert setting", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *settingRepository) UpdateValue(ctx context.Context, key, value string) error {
	tag, err := r.storage.Exec(ctx,
		"UPDATE settings SET value = $1, updated_at = NOW() WHERE key = $2", value, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *settingRepository) Delete(ctx context.Context, key string) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM settings WHERE key = $1", key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func SettingEntityToDTO(s *entities.Setting) dto.SettingDTO {
	return dto.SettingDTO{
		ID:        s.ID,
		Key:       s.Key,
		Value:     s.Value,
		ValueType: s.ValueType,
		CreatedAt: s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.TimePtrToString(s.UpdatedAt),
	}
}
