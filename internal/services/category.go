package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/repositories"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
	"marketplace-system/pkg/utils"
)

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	GetCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryService struct {
	categoryRepository repositories.CategoryRepositoryInterface
	logger             *zap.Logger
}

func NewCategoryService(
	categoryRepository repositories.CategoryRepositoryInterface,
	logger *zap.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *CategoryService) GetCategories(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	return s.categoryRepository.GetCategories(ctx, spec)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := repositories.CategoryEntityToDTO(category)
	return &result, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	if _, err := s.categoryRepository.FindBySlug(ctx, payload.Slug); err == nil {
		return nil, apperrors.NewInvalidInputError("slug '%s' is already in use", payload.Slug)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	category := &entities.Category{
		Name: payload.Name,
		Slug: payload.Slug,
	}
	id, err := s.categoryRepository.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = id

	result := repositories.CategoryEntityToDTO(category)
	return &result, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Slug.Valid && payload.Slug.String != category.Slug {
		if existing, err := s.categoryRepository.FindBySlug(ctx, payload.Slug.String); err == nil && existing.ID != id {
			return nil, apperrors.NewInvalidInputError("slug '%s' is already in use", payload.Slug.String)
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	utils.PatchString(&category.Name, payload.Name)
	utils.PatchString(&category.Slug, payload.Slug)

	if err := s.categoryRepository.Update(ctx, category); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, id)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.categoryRepository.Delete(ctx, id)
}
