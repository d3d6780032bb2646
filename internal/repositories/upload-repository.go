package repositories

import (
	"context"
	"database/sql"
	"time"

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
	uploadTable  = "uploads"
	uploadFields = "id, owner_id, category_id, title, description, tags, price, file_path, preview_path, status, is_featured, downloads, created_at, updated_at"
)

var UploadResource = bd.ResourceConfig{
	Table:   uploadTable,
	Columns: []string{"id", "owner_id", "category_id", "title", "description", "tags", "price", "preview_path", "status", "is_featured", "downloads", "created_at", "updated_at"},
	ColumnMap: map[string]string{
		"id":          "id",
		"owner_id":    "owner_id",
		"category_id": "category_id",
		"title":       "title",
		"description": "description",
		"tags":        "tags",
		"price":       "price",
		"status":      "status",
		"is_featured": "is_featured",
		"downloads":   "downloads",
		"created_at":  "created_at",
	},
	TextColumns:   map[string]bool{"title": true, "description": true, "tags": true},
	SearchColumns: []string{"title", "description", "tags"},
}

type dbUpload struct {
	ID          uint64
	OwnerID     uint64
	CategoryID  uint64
	Title       string
	Description string
	Tags        string
	Price       float64
	FilePath    string
	PreviewPath sql.NullString
	Status      string
	IsFeatured  bool
	Downloads   uint64
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
}

func (db *dbUpload) ToEntity() *entities.Upload {
	u := &entities.Upload{
		ID:          db.ID,
		OwnerID:     db.OwnerID,
		CategoryID:  db.CategoryID,
		Title:       db.Title,
		Description: db.Description,
		Tags:        db.Tags,
		Price:       db.Price,
		FilePath:    db.FilePath,
		Status:      db.Status,
		IsFeatured:  db.IsFeatured,
		Downloads:   db.Downloads,
		CreatedAt:   db.CreatedAt,
	}
	if db.PreviewPath.Valid {
		u.PreviewPath = &db.PreviewPath.String
	}
	if db.UpdatedAt.Valid {
		u.UpdatedAt = &db.UpdatedAt.Time
	}
	return u
}

type UploadRepositoryInterface interface {
	GetUploads(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindByID(ctx context.Context, id uint64) (*entities.Upload, error)
	Create(ctx context.Context, upload *entities.Upload) (uint64, error)
	Update(ctx context.Context, upload *entities.Upload) error
	Delete(ctx context.Context, id uint64) error
	SetStatus(ctx context.Context, id uint64, status string) error
	ToggleFeatured(ctx context.Context, id uint64) (bool, error)
	IncrementDownloads(ctx context.Context, id uint64) error
	CountByCategory(ctx context.Context) (map[string]uint64, error)
	CountByStatus(ctx context.Context) (map[string]uint64, error)
}

type uploadRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUploadRepository(storage *pgxpool.Pool, logger *zap.Logger) UploadRepositoryInterface {
	return &uploadRepository{storage: storage, logger: logger}
}

func (r *uploadRepository) GetUploads(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	rows, total, err := ListResource(ctx, r.storage, UploadResource, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult{
		List:       rows,
		Pagination: types.ComputePagination(spec.Page, spec.Limit, total),
	}, nil
}

func (r *uploadRepository) FindByID(ctx context.Context, id uint64) (*entities.Upload, error) {
	query := "SELECT " + uploadFields + " FROM " + uploadTable + " WHERE id = $1"
	var row dbUpload
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.OwnerID, &row.CategoryID, &row.Title, &row.Description,
		&row.Tags, &row.Price, &row.FilePath, &row.PreviewPath, &row.Status,
		&row.IsFeatured, &row.Downloads, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *uploadRepository) Create(ctx context.Context, upload *entities.Upload) (uint64, error) {
	query := `
		INSERT INTO uploads (owner_id, category_id, title, description, tags, price, file_path, preview_path, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		upload.OwnerID, upload.CategoryID, upload.Title, upload.Description,
		upload.Tags, upload.Price, upload.FilePath, upload.PreviewPath, upload.Status,
	).Scan(&id)
	if err != nil {
		r.logger.Error("failed to insert upload", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *uploadRepository) Update(ctx context.Context, upload *entities.Upload) error {
	query := `
		UPDATE uploads
		SET category_id = $1, title = $2, description = $3, tags = $4, price = $5, updated_at = NOW()
		WHERE id = $6`
	tag, err := r.storage.Exec(ctx, query,
		upload.CategoryID, upload.Title, upload.Description, upload.Tags, upload.Price, upload.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *uploadRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM uploads WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *uploadRepository) SetStatus(ctx context.Context, id uint64, status string) error {
	tag, err := r.storage.Exec(ctx,
		"UPDATE uploads SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *uploadRepository) ToggleFeatured(ctx context.Context, id uint64) (bool, error) {
	return ToggleBoolColumn(ctx, r.storage, uploadTable, "is_featured", id)
}

func (r *uploadRepository) IncrementDownloads(ctx context.Context, id uint64) error {
	_, err := r.storage.Exec(ctx, "UPDATE uploads SET downloads = downloads + 1 WHERE id = $1", id)
	return err
}

func (r *uploadRepository) CountByCategory(ctx context.Context) (map[string]uint64, error) {
	return CountGrouped(ctx, r.storage, uploadTable, "category_id")
}

func (r *uploadRepository) CountByStatus(ctx context.Context) (map[string]uint64, error) {
	return CountGrouped(ctx, r.storage, uploadTable, "status")
}

func UploadEntityToDTO(u *entities.Upload) dto.UploadDTO {
	return dto.UploadDTO{
		ID:          u.ID,
		OwnerID:     u.OwnerID,
		CategoryID:  u.CategoryID,
		Title:       u.Title,
		Description: u.Description,
		Tags:        u.Tags,
		Price:       u.Price,
		FilePath:    u.FilePath,
		PreviewPath: u.PreviewPath,
		Status:      u.Status,
		IsFeatured:  u.IsFeatured,
		Downloads:   u.Downloads,
		CreatedAt:   u.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt:   utils.TimePtrToString(u.UpdatedAt),
	}
}
