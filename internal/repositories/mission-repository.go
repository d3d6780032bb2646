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
	missionTable          = "missions"
	missionFields         = "id, client_id, assignee_id, title, description, budget, deadline, status, created_at, updated_at"
	missionApplicantTable = "mission_applicants"
)

var MissionResource = bd.ResourceConfig{
	Table:   missionTable,
	Columns: []string{"id", "client_id", "assignee_id", "title", "description", "budget", "deadline", "status", "created_at", "updated_at"},
	ColumnMap: map[string]string{
		"id":          "id",
		"client_id":   "client_id",
		"assignee_id": "assignee_id",
		"title":       "title",
		"description": "description",
		"budget":      "budget",
		"deadline":    "deadline",
		"status":      "status",
		"created_at":  "created_at",
	},
	TextColumns:   map[string]bool{"title": true, "description": true},
	SearchColumns: []string{"title", "description"},
}

type dbMission struct {
	ID          uint64
	ClientID    uint64
	AssigneeID  sql.NullInt64
	Title       string
	Description string
	Budget      float64
	Deadline    sql.NullTime
	Status      string
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
}

func (db *dbMission) ToEntity() *entities.Mission {
	m := &entities.Mission{
		ID:          db.ID,
		ClientID:    db.ClientID,
		Title:       db.Title,
		Description: db.Description,
		Budget:      db.Budget,
		Status:      db.Status,
		CreatedAt:   db.CreatedAt,
	}
	if db.AssigneeID.Valid {
		assignee := uint64(db.AssigneeID.Int64)
		m.AssigneeID = &assignee
	}
	if db.Deadline.Valid {
		m.Deadline = &db.Deadline.Time
	}
	if db.UpdatedAt.Valid {
		m.UpdatedAt = &db.UpdatedAt.Time
	}
	return m
}

type MissionRepositoryInterface interface {
	GetMissions(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindByID(ctx context.Context, id uint64) (*entities.Mission, error)
	Create(ctx context.Context, mission *entities.Mission) (uint64, error)
	Update(ctx context.Context, mission *entities.Mission) error
	Delete(ctx context.Context, id uint64) error
	SetStatus(ctx context.Context, id uint64, status string, assigneeID *uint64) error
	AddApplicant(ctx context.Context, missionID, userID uint64) error
	HasApplicant(ctx context.Context, missionID, userID uint64) (bool, error)
	GetApplicants(ctx context.Context, missionID uint64) ([]dto.MissionApplicantDTO, error)
	CountByStatus(ctx context.Context) (map[string]uint64, error)
}

type missionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMissionRepository(storage *pgxpool.Pool, logger *zap.Logger) MissionRepositoryInterface {
	return &missionRepository{storage: storage, logger: logger}
}

func (r *missionRepository) GetMissions(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	rows, total, err := ListResource(ctx, r.storage, MissionResource, spec)
	if err != nil {
		return nil, err
	}
	return &dto.ListResult{
		List:       rows,
		Pagination: types.ComputePagination(spec.Page, spec.Limit, total),
	}, nil
}

func (r *missionRepository) FindByID(ctx context.Context, id uint64) (*entities.Mission, error) {
	query := "SELECT " + missionFields + " FROM " + missionTable + " WHERE id = $1"
	var row dbMission
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.ClientID, &row.AssigneeID, &row.Title, &row.Description,
		&row.Budget, &row.Deadline, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *missionRepository) Create(ctx context.Context, mission *entities.Mission) (uint64, error) {
	query := `
		INSERT INTO missions (client_id, title, description, budget, deadline, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		mission.ClientID, mission.Title, mission.Description,
		mission.Budget, mission.Deadline, mission.Status,
	).Scan(&id)
	if err != nil {
		r.logger.Error("failed to insert mission", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *missionRepository) Update(ctx context.Context, mission *entities.Mission) error {
	query := `
		UPDATE missions
		SET title = $1, description = $2, budget = $3, deadline = $4, updated_at = NOW()
		WHERE id = $5`
	tag, err := r.storage.Exec(ctx, query,
		mission.Title, mission.Description, mission.Budget, mission.Deadline, mission.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *missionRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM missions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetStatus writes the new status guarded by the current one, so concurrent
// transitions cannot skip a step. assigneeID is only written when provided.
func (r *missionRepository) SetStatus(ctx context.Context, id uint64, status string, assigneeID *uint64) error {
	var tagRows int64
	if assigneeID != nil {
		tag, err := r.storage.Exec(ctx, `
			UPDATE missions SET status = $1, assignee_id = $2, updated_at = NOW()
			WHERE id = $3`, status, *assigneeID, id)
		if err != nil {
			return err
		}
		tagRows = tag.RowsAffected()
	} else {
		tag, err := r.storage.Exec(ctx, `
			UPDATE missions SET status = $1, updated_at = NOW()
			WHERE id = $2`, status, id)
		if err != nil {
			return err
		}
		tagRows = tag.RowsAffected()
	}
	if tagRows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *missionRepository) AddApplicant(ctx context.Context, missionID, userID uint64) error {
	_, err := r.storage.Exec(ctx, `
		INSERT INTO mission_applicants (mission_id, user_id)
		VALUES ($1, $2)`, missionID, userID)
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrBadRequest
	}
	return err
}

func (r *missionRepository) HasApplicant(ctx context.Context, missionID, userID uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM mission_applicants WHERE mission_id = $1 AND user_id = $2)`,
		missionID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *missionRepository) GetApplicants(ctx context.Context, missionID uint64) ([]dto.MissionApplicantDTO, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT mission_id, user_id, applied_at
		FROM mission_applicants
		WHERE mission_id = $1
		ORDER BY applied_at`, missionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []dto.MissionApplicantDTO
	for rows.Next() {
		var missionID, userID uint64
		var appliedAt time.Time
		if err := rows.Scan(&missionID, &userID, &appliedAt); err != nil {
			return nil, err
		}
		applicants = append(applicants, dto.MissionApplicantDTO{
			MissionID: missionID,
			UserID:    userID,
			AppliedAt: appliedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	return applicants, rows.Err()
}

func (r *missionRepository) CountByStatus(ctx context.Context) (map[string]uint64, error) {
	return CountGrouped(ctx, r.storage, missionTable, "status")
}

func MissionEntityToDTO(m *entities.Mission) dto.MissionDTO {
	d := dto.MissionDTO{
		ID:          m.ID,
		ClientID:    m.ClientID,
		AssigneeID:  m.AssigneeID,
		Title:       m.Title,
		Description: m.Description,
		Budget:      m.Budget,
		Status:      m.Status,
		Deadline:    utils.TimePtrToString(m.Deadline),
		CreatedAt:   m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		UpdatedAt:   utils.TimePtrToString(m.UpdatedAt),
	}
	return d
}
