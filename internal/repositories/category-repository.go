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
	categoryTable  = "categories"
	categoryFields = "id, name, slug, created_at, updated_at"
)

var CategoryResource = bd.ResourceConfig{
	Table:   categoryTable,
	Columns: []string{"id", "name", "slug", "created_at", "updated_at"},
	ColumnMap: map[string]string{
		"id":         "id",
		"name":       "name",
		"slug":       "slug",
		"created_at": "created_at",
	},
	TextColumns:   map[string]bool{"name": true, "slug": true},
	SearchColumns: []string{"name", "slug"},
}

type dbCategory struct {
	ID        uint64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbCategory) ToEntity() *entities.Category {
	c := &entities.Category{
		ID:        db.ID,
		Name:      db.Name,
		Slug:      db.Slug,
		CreatedAt: db.CreatedAt,
	}
	if db.UpdatedAt.Valid {
		c.UpdatedAt = &db.UpdatedAt.Time
	}
	return c
}

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindByID(ctx context.Context, id uint64) (*entities.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Category, error)
	Create(ctx context.Context, category *entities.Category) (uint64, error)
	Update(ctx context.Context, category *entities.Category) error
	Delete(ctx context.Context, id uint64) error
}

type categoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoryRepositoryInterface {
	return &categoryRepository{storage: storage, logger: logger}
}

func (r *categoryRepository) GetCategories(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	rows, total, err := ListResource(ctx, r.storage, CategoryResource, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult{
		List:       rows,
		Pagination: types.ComputePagination(spec.Page, spec.Limit, total),
	}, nil
}

func (r *categoryRepository) findOne(ctx context.Context, where string, arg interface{}) (*entities.Category, error) {
	query := "SELECT " + categoryFields + " FROM " + categoryTable + " WHERE " + where
	var row dbCategory
	err := r.storage.QueryRow(ctx, query, arg).Scan(
		&row.ID, &row.Name, &row.Slug, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint64) (*entities.Category, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	return r.findOne(ctx, "slug = $1", slug)
}

func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) (uint64, error) {
	query := `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query, category.Name, category.Slug).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrBadRequest
		}
		r.logger.Error("failed to insert category", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entities.Category) error {
	tag, err := r.storage.Exec(ctx,
		"UPDATE categories SET name = $1, slug = $2, updated_at = NOW() WHERE id = $3",
		category.Name, category.Slug, category.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func CategoryEntityToDTO(c *entities.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.TimePtrToString(c.UpdatedAt),
	}
}
