package services

import (
	"context"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/events"
	"marketplace-system/internal/repositories"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/eventbus"
	"marketplace-system/pkg/filestorage"
	"marketplace-system/pkg/types"
	"marketplace-system/pkg/utils"
)

type UploadServiceInterface interface {
	GetUploads(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	SearchUploads(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindUpload(ctx context.Context, id uint64) (*dto.UploadDTO, error)
	CreateUpload(ctx context.Context, payload dto.CreateUploadDTO, file, preview *multipart.FileHeader) (*dto.UploadDTO, error)
	UpdateUpload(ctx context.Context, id uint64, payload dto.UpdateUploadDTO) (*dto.UploadDTO, error)
	DeleteUpload(ctx context.Context, id uint64) error
	ReviewUpload(ctx context.Context, id uint64, status string) (*dto.UploadDTO, error)
	ToggleFeatured(ctx context.Context, id uint64) (bool, error)
}

type UploadService struct {
	uploadRepository   repositories.UploadRepositoryInterface
	categoryRepository repositories.CategoryRepositoryInterface
	fileStorage        filestorage.FileStorageInterface
	bus                *eventbus.Bus
	logger             *zap.Logger
}

func NewUploadService(
	uploadRepository repositories.UploadRepositoryInterface,
	categoryRepository repositories.CategoryRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) UploadServiceInterface {
	return &UploadService{
		uploadRepository:   uploadRepository,
		categoryRepository: categoryRepository,
		fileStorage:        fileStorage,
		bus:                bus,
		logger:             logger,
	}
}

func (s *UploadService) GetUploads(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	if err := s.resolveCategoryFilter(ctx, &spec); err != nil {
		return nil, err
	}
	return s.uploadRepository.GetUploads(ctx, spec)
}

// SearchUploads requires a non-blank keyword; the composer itself does not
// re-validate.
func (s *UploadService) SearchUploads(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	if strings.TrimSpace(spec.Keyword) == "" {
		return nil, apperrors.ErrEmptySearchKeyword
	}
	if err := s.resolveCategoryFilter(ctx, &spec); err != nil {
		return nil, err
	}
	return s.uploadRepository.GetUploads(ctx, spec)
}

// resolveCategoryFilter rewrites a `category` slug filter into the
// `category_id` filter the composer knows about.
func (s *UploadService) resolveCategoryFilter(ctx context.Context, spec *types.QuerySpec) error {
	conditions, ok := spec.Filters["category"]
	if !ok || len(conditions) == 0 {
		return nil
	}

	category, err := s.categoryRepository.FindBySlug(ctx, conditions[0].Value)
	if err != nil {
		return apperrors.NewHttpError(400, "unknown category", err,
			map[string]interface{}{"category": conditions[0].Value})
	}

	delete(spec.Filters, "category")
	spec.Filters["category_id"] = []types.FilterValue{
		{Op: types.FilterOpEq, Value: utils.FormatUint(category.ID)},
	}
	return nil
}

func (s *UploadService) FindUpload(ctx context.Context, id uint64) (*dto.UploadDTO, error) {
	upload, err := s.uploadRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := repositories.UploadEntityToDTO(upload)
	return &result, nil
}

func (s *UploadService) CreateUpload(ctx context.Context, payload dto.CreateUploadDTO, file, preview *multipart.FileHeader) (*dto.UploadDTO, error) {
	ownerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if _, err := s.categoryRepository.FindByID(ctx, payload.CategoryID); err != nil {
		return nil, apperrors.NewHttpError(400, "unknown category", err,
			map[string]interface{}{"category_id": payload.CategoryID})
	}

	if file == nil {
		return nil, apperrors.NewHttpError(400, "file is required", apperrors.ErrBadRequest, nil)
	}
	filePath, err := s.fileStorage.Save(file)
	if err != nil {
		s.logger.Error("failed to save upload file", zap.Error(err))
		return nil, err
	}

	upload := &entities.Upload{
		OwnerID:     ownerID,
		CategoryID:  payload.CategoryID,
		Title:       payload.Title,
		Description: payload.Description,
		Tags:        payload.Tags,
		Price:       payload.Price,
		FilePath:    filePath,
		Status:      entities.UploadStatusPending,
	}
	if preview != nil {
		previewPath, err := s.fileStorage.Save(preview)
		if err != nil {
			return nil, err
		}
		upload.PreviewPath = &previewPath
	}

	id, err := s.uploadRepository.Create(ctx, upload)
	if err != nil {
		return nil, err
	}
	upload.ID = id

	s.logger.Info("upload created", zap.Uint64("id", id), zap.Uint64("owner", ownerID))
	result := repositories.UploadEntityToDTO(upload)
	return &result, nil
}

func (s *UploadService) UpdateUpload(ctx context.Context, id uint64, payload dto.UpdateUploadDTO) (*dto.UploadDTO, error) {
	upload, err := s.uploadRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, upload.OwnerID); err != nil {
		return nil, err
	}

	utils.PatchString(&upload.Title, payload.Title)
	utils.PatchString(&upload.Description, payload.Description)
	utils.PatchString(&upload.Tags, payload.Tags)
	utils.PatchFloat64(&upload.Price, payload.Price)
	if utils.PatchUint64(&upload.CategoryID, payload.CategoryID) {
		if _, err := s.categoryRepository.FindByID(ctx, upload.CategoryID); err != nil {
			return nil, apperrors.NewHttpError(400, "unknown category", err,
				map[string]interface{}{"category_id": upload.CategoryID})
		}
	}

	if err := s.uploadRepository.Update(ctx, upload); err != nil {
		return nil, err
	}
	result := repositories.UploadEntityToDTO(upload)
	return &result, nil
}

func (s *UploadService) DeleteUpload(ctx context.Context, id uint64) error {
	upload, err := s.uploadRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(ctx, upload.OwnerID); err != nil {
		return err
	}

	if err := s.uploadRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.fileStorage.Delete(upload.FilePath); err != nil {
		s.logger.Warn("failed to remove upload file", zap.String("path", upload.FilePath), zap.Error(err))
	}
	return nil
}

// ReviewUpload is the admin approve/reject step.
func (s *UploadService) ReviewUpload(ctx context.Context, id uint64, status string) (*dto.UploadDTO, error) {
	if !entities.IsValidUploadStatus(status) || status == entities.UploadStatusPending {
		return nil, apperrors.ErrBadRequest
	}

	upload, err := s.uploadRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upload.Status != entities.UploadStatusPending {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.uploadRepository.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	upload.Status = status

	s.bus.Publish(ctx, events.UploadReviewedEvent{
		UploadID: upload.ID,
		OwnerID:  upload.OwnerID,
		Title:    upload.Title,
		Status:   status,
	})

	result := repositories.UploadEntityToDTO(upload)
	return &result, nil
}

func (s *UploadService) ToggleFeatured(ctx context.Context, id uint64) (bool, error) {
	return s.uploadRepository.ToggleFeatured(ctx, id)
}

func (s *UploadService) checkOwnership(ctx context.Context, ownerID uint64) error {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	if userID != ownerID && !utils.IsAdmin(ctx) {
		return apperrors.ErrForbidden
	}
	return nil
}
