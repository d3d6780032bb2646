package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/repositories"
	apperrors "marketplace-system/pkg/errors"
)

const settingCachePrefix = "settings:"

type SettingServiceInterface interface {
	GetSettings(ctx context.Context) ([]dto.SettingDTO, error)
	GetSetting(ctx context.Context, key string) (*dto.SettingDTO, error)
	CreateSetting(ctx context.Context, payload dto.CreateSettingDTO) (*dto.SettingDTO, error)
	UpdateSetting(ctx context.Context, key, value string) (*dto.SettingDTO, error)
	DeleteSetting(ctx context.Context, key string) error
}

// SettingService serves reads through the cache and invalidates the key on
// every write, so admin edits become visible without restarting the process.
type SettingService struct {
	settingRepository repositories.SettingRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	cacheTTL          time.Duration
	logger            *zap.Logger
}

func NewSettingService(
	settingRepository repositories.SettingRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) SettingServiceInterface {
	return &SettingService{
		settingRepository: settingRepository,
		cache:             cache,
		cacheTTL:          cacheTTL,
		logger:            logger,
	}
}

func (s *SettingService) GetSettings(ctx context.Context) ([]dto.SettingDTO, error) {
	settings, err := s.settingRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SettingDTO, 0, len(settings))
	for i := range settings {
		result = append(result, repositories.SettingEntityToDTO(&settings[i]))
	}
	return result, nil
}

func (s *SettingService) GetSetting(ctx context.Context, key string) (*dto.SettingDTO, error) {
	cacheKey := settingCachePrefix + key

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var result dto.SettingDTO
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	setting, err := s.settingRepository.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	result := repositories.SettingEntityToDTO(setting)

	if serialized, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, cacheKey, serialized, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache setting", zap.String("key", key), zap.Error(err))
		}
	}
	return &result, nil
}

func (s *SettingService) CreateSetting(ctx context.Context, payload dto.CreateSettingDTO) (*dto.SettingDTO, error) {
	if !entities.ValidateSettingValue(payload.ValueType, payload.Value) {
		return nil, apperrors.NewInvalidInputError(
			"value '%s' does not parse as %s", payload.Value, payload.ValueType)
	}

	setting := &entities.Setting{
		Key:       payload.Key,
		Value:     payload.Value,
		ValueType: payload.ValueType,
	}
	id, err := s.settingRepository.Create(ctx, setting)
	if err != nil {
		return nil, err
	}
	setting.ID = id

	result := repositories.SettingEntityToDTO(setting)
	return &result, nil
}

func (s *SettingService) UpdateSetting(ctx context.Context, key, value string) (*dto.SettingDTO, error) {
	setting, err := s.settingRepository.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if !entities.ValidateSettingValue(setting.ValueType, value) {
		return nil, apperrors.NewInvalidInputError(
			"value '%s' does not parse as %s", value, setting.ValueType)
	}

	if err := s.settingRepository.UpdateValue(ctx, key, value); err != nil {
		return nil, err
	}
	if err := s.cache.Del(ctx, settingCachePrefix+key); err != nil {
		s.logger.Warn("failed to invalidate setting cache", zap.String("key", key), zap.Error(err))
	}

	setting.Value = value
	result := repositories.SettingEntityToDTO(setting)
	return &result, nil
}

func (s *SettingService) DeleteSetting(ctx context.Context, key string) error {
	if err := s.settingRepository.Delete(ctx, key); err != nil {
		return err
	}
	if err := s.cache.Del(ctx, settingCachePrefix+key); err != nil {
		s.logger.Warn("failed to invalidate setting cache", zap.String("key", key), zap.Error(err))
	}
	return nil
}
