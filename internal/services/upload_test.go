package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/eventbus"
	"marketplace-system/pkg/types"
)

type fakeUploadRepo struct {
	lastSpec types.QuerySpec
}

func (r *fakeUploadRepo) GetUploads(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	r.lastSpec = spec
	return &dto.ListResult{List: []map[string]interface{}{}}, nil
}

func (r *fakeUploadRepo) FindByID(ctx context.Context, id uint64) (*entities.Upload, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeUploadRepo) Create(ctx context.Context, upload *entities.Upload) (uint64, error) {
	return 1, nil
}

func (r *fakeUploadRepo) Update(ctx context.Context, upload *entities.Upload) error { return nil }
func (r *fakeUploadRepo) Delete(ctx context.Context, id uint64) error               { return nil }
func (r *fakeUploadRepo) SetStatus(ctx context.Context, id uint64, status string) error {
	return nil
}
func (r *fakeUploadRepo) ToggleFeatured(ctx context.Context, id uint64) (bool, error) {
	return false, nil
}
func (r *fakeUploadRepo) IncrementDownloads(ctx context.Context, id uint64) error { return nil }
func (r *fakeUploadRepo) CountByCategory(ctx context.Context) (map[string]uint64, error) {
	return nil, nil
}
func (r *fakeUploadRepo) CountByStatus(ctx context.Context) (map[string]uint64, error) {
	return nil, nil
}

type fakeCategoryRepo struct {
	bySlug map[string]*entities.Category
}

func (r *fakeCategoryRepo) GetCategories(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	return &dto.ListResult{}, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uint64) (*entities.Category, error) {
	for _, c := range r.bySlug {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	if c, ok := r.bySlug[slug]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entities.Category) (uint64, error) {
	return 1, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entities.Category) error {
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uint64) error { return nil }

type fakeFileStorage struct{}

func (s *fakeFileStorage) Save(file *multipart.FileHeader) (string, error) { return "files/x", nil }
func (s *fakeFileStorage) Delete(path string) error                        { return nil }

func newUploadServiceForTest(uploadRepo *fakeUploadRepo, categoryRepo *fakeCategoryRepo) UploadServiceInterface {
	logger := zap.NewNop()
	return NewUploadService(uploadRepo, categoryRepo, &fakeFileStorage{}, eventbus.New(logger), logger)
}

func TestGetUploadsResolvesCategorySlug(t *testing.T) {
	uploadRepo := &fakeUploadRepo{}
	categoryRepo := &fakeCategoryRepo{bySlug: map[string]*entities.Category{
		"landscapes": {ID: 7, Name: "Landscapes", Slug: "landscapes"},
	}}
	svc := newUploadServiceForTest(uploadRepo, categoryRepo)

	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{
			"category": {{Op: types.FilterOpEq, Value: "landscapes"}},
		},
		Page:  1,
		Limit: 20,
	}
	_, err := svc.GetUploads(context.Background(), spec)
	require.NoError(t, err)

	_, stillThere := uploadRepo.lastSpec.Filters["category"]
	assert.False(t, stillThere)

	resolved, ok := uploadRepo.lastSpec.Filters["category_id"]
	require.True(t, ok)
	require.Len(t, resolved, 1)
	assert.Equal(t, types.FilterOpEq, resolved[0].Op)
	assert.Equal(t, "7", resolved[0].Value)
}

func TestGetUploadsUnknownCategorySlug(t *testing.T) {
	uploadRepo := &fakeUploadRepo{}
	svc := newUploadServiceForTest(uploadRepo, &fakeCategoryRepo{bySlug: map[string]*entities.Category{}})

	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{
			"category": {{Op: types.FilterOpEq, Value: "nope"}},
		},
	}
	_, err := svc.GetUploads(context.Background(), spec)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	assert.ErrorAs(t, err, &httpErr)
}

func TestSearchUploadsRequiresKeyword(t *testing.T) {
	uploadRepo := &fakeUploadRepo{}
	svc := newUploadServiceForTest(uploadRepo, &fakeCategoryRepo{})

	for _, keyword := range []string{"", "   ", "\t\n"} {
		_, err := svc.SearchUploads(context.Background(), types.QuerySpec{Keyword: keyword})
		assert.ErrorIs(t, err, apperrors.ErrEmptySearchKeyword, "keyword %q", keyword)
	}
}

func TestSearchUploadsWithKeyword(t *testing.T) {
	uploadRepo := &fakeUploadRepo{}
	svc := newUploadServiceForTest(uploadRepo, &fakeCategoryRepo{})

	_, err := svc.SearchUploads(context.Background(), types.QuerySpec{Keyword: "sunset"})
	require.NoError(t, err)
	assert.Equal(t, "sunset", uploadRepo.lastSpec.Keyword)
}
