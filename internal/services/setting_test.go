package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	apperrors "marketplace-system/pkg/errors"
)

type fakeCache struct {
	data map[string]string
	sets int
	gets int
	dels int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.gets++
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.sets++
	switch v := value.(type) {
	case string:
		c.data[key] = v
	case []byte:
		c.data[key] = string(v)
	}
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	c.dels++
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

type fakeSettingRepo struct {
	settings map[string]*entities.Setting
	finds    int
}

func newFakeSettingRepo(settings ...*entities.Setting) *fakeSettingRepo {
	repo := &fakeSettingRepo{settings: make(map[string]*entities.Setting)}
	for _, s := range settings {
		repo.settings[s.Key] = s
	}
	return repo
}

func (r *fakeSettingRepo) GetAll(ctx context.Context) ([]entities.Setting, error) {
	var result []entities.Setting
	for _, s := range r.settings {
		result = append(result, *s)
	}
	return result, nil
}

func (r *fakeSettingRepo) FindByKey(ctx context.Context, key string) (*entities.Setting, error) {
	r.finds++
	if s, ok := r.settings[key]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeSettingRepo) Create(ctx context.Context, setting *entities.Setting) (uint64, error) {
	setting.ID = uint64(len(r.settings) + 1)
	r.settings[setting.Key] = setting
	return setting.ID, nil
}

func (r *fakeSettingRepo) UpdateValue(ctx context.Context, key, value string) error {
	s, ok := r.settings[key]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.Value = value
	return nil
}

func (r *fakeSettingRepo) Delete(ctx context.Context, key string) error {
	if _, ok := r.settings[key]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.settings, key)
	return nil
}

func newTestSettingService(repo *fakeSettingRepo, cache *fakeCache) SettingServiceInterface {
	return NewSettingService(repo, cache, time.Minute, zap.NewNop())
}

func commissionSetting() *entities.Setting {
	return &entities.Setting{
		ID:        1,
		Key:       "marketplace.commission_percent",
		Value:     "20",
		ValueType: entities.SettingTypeInt,
		CreatedAt: time.Now(),
	}
}

func TestSettingService_GetSettingPopulatesCache(t *testing.T) {
	repo := newFakeSettingRepo(commissionSetting())
	cache := newFakeCache()
	svc := newTestSettingService(repo, cache)

	first, err := svc.GetSetting(context.Background(), "marketplace.commission_percent")
	require.NoError(t, err)
	assert.Equal(t, "20", first.Value)
	assert.Equal(t, 1, repo.finds)
	assert.Equal(t, 1, cache.sets)

	// second read is served from cache without touching the repository
	second, err := svc.GetSetting(context.Background(), "marketplace.commission_percent")
	require.NoError(t, err)
	assert.Equal(t, first.Value, second.Value)
	assert.Equal(t, 1, repo.finds)
}

func TestSettingService_UpdateInvalidatesCache(t *testing.T) {
	repo := newFakeSettingRepo(commissionSetting())
	cache := newFakeCache()
	svc := newTestSettingService(repo, cache)

	_, err := svc.GetSetting(context.Background(), "marketplace.commission_percent")
	require.NoError(t, err)

	updated, err := svc.UpdateSetting(context.Background(), "marketplace.commission_percent", "25")
	require.NoError(t, err)
	assert.Equal(t, "25", updated.Value)
	assert.Equal(t, 1, cache.dels)

	// fresh read goes back to the repository and sees the new value
	after, err := svc.GetSetting(context.Background(), "marketplace.commission_percent")
	require.NoError(t, err)
	assert.Equal(t, "25", after.Value)
}

func TestSettingService_UpdateRejectsWrongType(t *testing.T) {
	repo := newFakeSettingRepo(commissionSetting())
	svc := newTestSettingService(repo, newFakeCache())

	_, err := svc.UpdateSetting(context.Background(), "marketplace.commission_percent", "not-a-number")
	require.Error(t, err)

	var invalidInput *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)
}

func TestSettingService_CreateValidatesDeclaredType(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := newTestSettingService(repo, newFakeCache())

	_, err := svc.CreateSetting(context.Background(), dto.CreateSettingDTO{
		Key:       "marketplace.allow_registration",
		Value:     "maybe",
		ValueType: entities.SettingTypeBool,
	})
	require.Error(t, err)

	created, err := svc.CreateSetting(context.Background(), dto.CreateSettingDTO{
		Key:       "marketplace.allow_registration",
		Value:     "true",
		ValueType: entities.SettingTypeBool,
	})
	require.NoError(t, err)
	assert.Equal(t, "true", created.Value)
}

func TestSettingService_DeleteInvalidatesCache(t *testing.T) {
	repo := newFakeSettingRepo(commissionSetting())
	cache := newFakeCache()
	svc := newTestSettingService(repo, cache)

	_, err := svc.GetSetting(context.Background(), "marketplace.commission_percent")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSetting(context.Background(), "marketplace.commission_percent"))
	assert.Equal(t, 1, cache.dels)

	_, err = svc.GetSetting(context.Background(), "marketplace.commission_percent")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
