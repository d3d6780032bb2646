package services

import (
	"context"

	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/repositories"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
	"marketplace-system/pkg/utils"
)

type NotificationServiceInterface interface {
	GetMyNotifications(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	Notify(ctx context.Context, recipientID uint64, notificationType, message string) error
	ToggleRead(ctx context.Context, id uint64) (bool, error)
	MarkAllRead(ctx context.Context) (int64, error)
	DeleteNotification(ctx context.Context, id uint64) error
}

type NotificationService struct {
	notificationRepository repositories.NotificationRepositoryInterface
	logger                 *zap.Logger
}

func NewNotificationService(
	notificationRepository repositories.NotificationRepositoryInterface,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

// GetMyNotifications pins the recipient filter to the caller.
func (s *NotificationService) GetMyNotifications(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if spec.Filters == nil {
		spec.Filters = make(map[string][]types.FilterValue)
	}
	spec.Filters["recipient_id"] = []types.FilterValue{{Op: types.FilterOpEq, Value: utils.FormatUint(userID)}}
	return s.notificationRepository.GetNotifications(ctx, spec)
}

func (s *NotificationService) Notify(ctx context.Context, recipientID uint64, notificationType, message string) error {
	_, err := s.notificationRepository.Create(ctx, &entities.Notification{
		RecipientID: recipientID,
		Type:        notificationType,
		Message:     message,
	})
	if err != nil {
		s.logger.Error("failed to create notification",
			zap.Uint64("recipient", recipientID), zap.String("type", notificationType), zap.Error(err))
	}
	return err
}

func (s *NotificationService) ToggleRead(ctx context.Context, id uint64) (bool, error) {
	if err := s.checkRecipient(ctx, id); err != nil {
		return false, err
	}
	return s.notificationRepository.ToggleRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return 0, apperrors.ErrUnauthorized
	}
	return s.notificationRepository.MarkAllRead(ctx, userID)
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id uint64) error {
	if err := s.checkRecipient(ctx, id); err != nil {
		return err
	}
	return s.notificationRepository.Delete(ctx, id)
}

func (s *NotificationService) checkRecipient(ctx context.Context, id uint64) error {
	notification, err := s.notificationRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	if notification.RecipientID != userID && !utils.IsAdmin(ctx) {
		return apperrors.ErrForbidden
	}
	return nil
}
