package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/repositories"
	"marketplace-system/pkg/types"
	"marketplace-system/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
	ToggleActive(ctx context.Context, id uint64) (bool, error)
	UpdateAvatar(ctx context.Context, id uint64, avatarPath string) (*dto.UserDTO, error)
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepository: userRepository, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	return s.userRepository.GetUsers(ctx, spec)
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := repositories.UserEntityToDTO(user)
	return &result, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		PasswordHash: string(hash),
		Role:         payload.Role,
		IsActive:     true,
	}
	id, err := s.userRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	result := repositories.UserEntityToDTO(user)
	return &result, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	utils.PatchString(&user.FirstName, payload.FirstName)
	utils.PatchString(&user.LastName, payload.LastName)
	utils.PatchString(&user.Email, payload.Email)
	utils.PatchString(&user.Role, payload.Role)
	if payload.Password.Valid {
		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password.String), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	result := repositories.UserEntityToDTO(user)
	return &result, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepository.Delete(ctx, id)
}

func (s *UserService) ToggleActive(ctx context.Context, id uint64) (bool, error) {
	value, err := s.userRepository.ToggleActive(ctx, id)
	if err != nil {
		return false, err
	}
	s.logger.Info("user active flag toggled", zap.Uint64("id", id), zap.Bool("is_active", value))
	return value, nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, id uint64, avatarPath string) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.AvatarPath = &avatarPath
	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}
	result := repositories.UserEntityToDTO(user)
	return &result, nil
}
