package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/contextkeys"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/eventbus"
	"marketplace-system/pkg/types"
)

type fakeMissionRepo struct {
	missions   map[uint64]*entities.Mission
	applicants map[uint64][]uint64
	lastSpec   types.QuerySpec
}

func newFakeMissionRepo(missions ...*entities.Mission) *fakeMissionRepo {
	r := &fakeMissionRepo{
		missions:   make(map[uint64]*entities.Mission),
		applicants: make(map[uint64][]uint64),
	}
	for _, m := range missions {
		r.missions[m.ID] = m
	}
	return r
}

func (r *fakeMissionRepo) GetMissions(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	r.lastSpec = spec
	return &dto.ListResult{List: []map[string]interface{}{}}, nil
}

func (r *fakeMissionRepo) FindByID(ctx context.Context, id uint64) (*entities.Mission, error) {
	if m, ok := r.missions[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeMissionRepo) Create(ctx context.Context, mission *entities.Mission) (uint64, error) {
	return 1, nil
}

func (r *fakeMissionRepo) Update(ctx context.Context, mission *entities.Mission) error { return nil }
func (r *fakeMissionRepo) Delete(ctx context.Context, id uint64) error                 { return nil }

func (r *fakeMissionRepo) SetStatus(ctx context.Context, id uint64, status string, assigneeID *uint64) error {
	if m, ok := r.missions[id]; ok {
		m.Status = status
		if assigneeID != nil {
			m.AssigneeID = assigneeID
		}
	}
	return nil
}

func (r *fakeMissionRepo) AddApplicant(ctx context.Context, missionID, userID uint64) error {
	r.applicants[missionID] = append(r.applicants[missionID], userID)
	return nil
}

func (r *fakeMissionRepo) HasApplicant(ctx context.Context, missionID, userID uint64) (bool, error) {
	for _, id := range r.applicants[missionID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMissionRepo) GetApplicants(ctx context.Context, missionID uint64) ([]dto.MissionApplicantDTO, error) {
	return nil, nil
}

func (r *fakeMissionRepo) CountByStatus(ctx context.Context) (map[string]uint64, error) {
	return nil, nil
}

func authedCtx(userID uint64, role string) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}

func newMissionServiceForTest(repo *fakeMissionRepo) MissionServiceInterface {
	logger := zap.NewNop()
	return NewMissionService(repo, eventbus.New(logger), logger)
}

func TestSearchMissionsRequiresKeyword(t *testing.T) {
	repo := newFakeMissionRepo()
	svc := newMissionServiceForTest(repo)

	for _, keyword := range []string{"", "   ", "\t"} {
		_, err := svc.SearchMissions(context.Background(), types.QuerySpec{Keyword: keyword})
		assert.ErrorIs(t, err, apperrors.ErrEmptySearchKeyword, "keyword %q", keyword)
	}

	_, err := svc.SearchMissions(context.Background(), types.QuerySpec{Keyword: "wedding"})
	require.NoError(t, err)
	assert.Equal(t, "wedding", repo.lastSpec.Keyword)
}

func TestApplyPhotographerOnly(t *testing.T) {
	repo := newFakeMissionRepo(&entities.Mission{ID: 1, ClientID: 10, Status: entities.MissionStatusOpen})
	svc := newMissionServiceForTest(repo)

	err := svc.Apply(authedCtx(20, entities.RoleUser), 1)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Empty(t, repo.applicants[1])

	err = svc.Apply(authedCtx(20, entities.RolePhotographer), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{20}, repo.applicants[1])
}

func TestApplyRejectsOwnMission(t *testing.T) {
	repo := newFakeMissionRepo(&entities.Mission{ID: 1, ClientID: 10, Status: entities.MissionStatusOpen})
	svc := newMissionServiceForTest(repo)

	err := svc.Apply(authedCtx(10, entities.RolePhotographer), 1)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	assert.ErrorAs(t, err, &httpErr)
}

func TestApplyClosedMission(t *testing.T) {
	repo := newFakeMissionRepo(&entities.Mission{ID: 1, ClientID: 10, Status: entities.MissionStatusAssigned})
	svc := newMissionServiceForTest(repo)

	err := svc.Apply(authedCtx(20, entities.RolePhotographer), 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}
