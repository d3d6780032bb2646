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
	userTable  = "users"
	userFields = "id, first_name, last_name, email, password_hash, role, avatar_path, is_active, created_at, updated_at"
)

// UserResource drives list/search composition for the users collection.
var UserResource = bd.ResourceConfig{
	Table:   userTable,
	Columns: []string{"id", "first_name", "last_name", "email", "role", "avatar_path", "is_active", "created_at", "updated_at"},
	ColumnMap: map[string]string{
		"id":         "id",
		"first_name": "first_name",
		"last_name":  "last_name",
		"email":      "email",
		"role":       "role",
		"is_active":  "is_active",
		"created_at": "created_at",
	},
	TextColumns:   map[string]bool{"first_name": true, "last_name": true, "email": true},
	SearchColumns: []string{"first_name", "last_name", "email"},
}

type dbUser struct {
	ID           uint64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	AvatarPath   sql.NullString
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (db *dbUser) ToEntity() *entities.User {
	u := &entities.User{
		ID:           db.ID,
		FirstName:    db.FirstName,
		LastName:     db.LastName,
		Email:        db.Email,
		PasswordHash: db.PasswordHash,
		Role:         db.Role,
		IsActive:     db.IsActive,
		CreatedAt:    db.CreatedAt,
	}
	if db.AvatarPath.Valid {
		u.AvatarPath = &db.AvatarPath.String
	}
	if db.UpdatedAt.Valid {
		u.UpdatedAt = &db.UpdatedAt.Time
	}
	return u
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) (uint64, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uint64) error
	ToggleActive(ctx context.Context, id uint64) (bool, error)
	CountByRole(ctx context.Context) (map[string]uint64, error)
}

type userRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &userRepository{storage: storage, logger: logger}
}

func (r *userRepository) GetUsers(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	rows, total, err := ListResource(ctx, r.storage, UserResource, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult{
		List:       rows,
		Pagination: types.ComputePagination(spec.Page, spec.Limit, total),
	}, nil
}

func (r *userRepository) findOne(ctx context.Context, where string, arg interface{}) (*entities.User, error) {
	query := "SELECT " + userFields + " FROM " + userTable + " WHERE " + where
	var row dbUser
	err := r.storage.QueryRow(ctx, query, arg).Scan(
		&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.PasswordHash,
		&row.Role, &row.AvatarPath, &row.IsActive, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) (uint64, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, role, avatar_path, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Role, user.AvatarPath, user.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrEmailTaken
		}
		r.logger.Error("failed to insert user", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *userRepository) Update(ctx context.Context, user *entities.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, password_hash = $4,
		    role = $5, avatar_path = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8`
	tag, err := r.storage.Exec(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Role, user.AvatarPath, user.IsActive, user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) ToggleActive(ctx context.Context, id uint64) (bool, error) {
	return ToggleBoolColumn(ctx, r.storage, userTable, "is_active", id)
}

func (r *userRepository) CountByRole(ctx context.Context) (map[string]uint64, error) {
	return CountGrouped(ctx, r.storage, userTable, "role")
}

// UserEntityToDTO shapes a user entity for responses; the password hash never
// leaves the repository layer through it.
func UserEntityToDTO(u *entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.AvatarPath,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt: utils.TimePtrToString(u.UpdatedAt),
	}
}
