package services

import (
	"context"

	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/events"
	"marketplace-system/internal/repositories"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/eventbus"
	"marketplace-system/pkg/types"
	"marketplace-system/pkg/utils"
)

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	GetMyOrders(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindOrder(ctx context.Context, id uint64) (*dto.OrderDTO, error)
	CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error)
	PayOrder(ctx context.Context, id uint64) (*dto.OrderDTO, error)
	DownloadOrder(ctx context.Context, id uint64) (*dto.DownloadDTO, error)
	DeleteOrder(ctx context.Context, id uint64) error
}

type OrderService struct {
	orderRepository  repositories.OrderRepositoryInterface
	uploadRepository repositories.UploadRepositoryInterface
	bus              *eventbus.Bus
	logger           *zap.Logger
}

func NewOrderService(
	orderRepository repositories.OrderRepositoryInterface,
	uploadRepository repositories.UploadRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepository:  orderRepository,
		uploadRepository: uploadRepository,
		bus:              bus,
		logger:           logger,
	}
}

func (s *OrderService) GetOrders(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	return s.orderRepository.GetOrders(ctx, spec)
}

// GetMyOrders forces the buyer filter to the caller regardless of what the
// query string claims.
func (s *OrderService) GetMyOrders(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if spec.Filters == nil {
		spec.Filters = make(map[string][]types.FilterValue)
	}
	spec.Filters["buyer_id"] = []types.FilterValue{{Op: types.FilterOpEq, Value: utils.FormatUint(userID)}}
	return s.orderRepository.GetOrders(ctx, spec)
}

func (s *OrderService) FindOrder(ctx context.Context, id uint64) (*dto.OrderDTO, error) {
	order, err := s.findVisibleOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	result := repositories.OrderEntityToDTO(order)
	return &result, nil
}

// CreateOrder captures the upload's current price into the order. Only
// approved uploads can be bought, and never by their own seller.
func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	buyerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	upload, err := s.uploadRepository.FindByID(ctx, payload.UploadID)
	if err != nil {
		return nil, err
	}
	if upload.Status != entities.UploadStatusApproved {
		return nil, apperrors.NewHttpError(409, "upload is not available for purchase",
			apperrors.ErrInvalidTransition, map[string]interface{}{"upload_id": upload.ID})
	}
	if upload.OwnerID == buyerID {
		return nil, apperrors.NewHttpError(400, "cannot buy your own upload",
			apperrors.ErrBadRequest, nil)
	}

	order := &entities.Order{
		BuyerID:  buyerID,
		UploadID: upload.ID,
		Amount:   upload.Price,
		Status:   entities.OrderStatusCreated,
	}
	id, err := s.orderRepository.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	result := repositories.OrderEntityToDTO(order)
	return &result, nil
}

// PayOrder simulates the payment: marks the order paid, records revenue for
// the seller in the same transaction and notifies the seller.
func (s *OrderService) PayOrder(ctx context.Context, id uint64) (*dto.OrderDTO, error) {
	order, err := s.findVisibleOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != entities.OrderStatusCreated {
		return nil, apperrors.ErrInvalidTransition
	}

	upload, err := s.uploadRepository.FindByID(ctx, order.UploadID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepository.MarkPaid(ctx, order.ID, upload.OwnerID); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.OrderPaidEvent{
		OrderID:  order.ID,
		BuyerID:  order.BuyerID,
		SellerID: upload.OwnerID,
		UploadID: upload.ID,
		Amount:   order.Amount,
		Title:    upload.Title,
	})
	s.logger.Info("order paid", zap.Uint64("order_id", order.ID), zap.Float64("amount", order.Amount))

	return s.FindOrder(ctx, order.ID)
}

// DownloadOrder hands out the file path of a paid order and bumps the
// upload's download counter.
func (s *OrderService) DownloadOrder(ctx context.Context, id uint64) (*dto.DownloadDTO, error) {
	order, err := s.findVisibleOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != entities.OrderStatusPaid {
		return nil, apperrors.NewHttpError(403, "order is not paid",
			apperrors.ErrForbidden, map[string]interface{}{"order_id": order.ID})
	}

	upload, err := s.uploadRepository.FindByID(ctx, order.UploadID)
	if err != nil {
		return nil, err
	}
	if err := s.uploadRepository.IncrementDownloads(ctx, upload.ID); err != nil {
		s.logger.Warn("failed to bump download counter", zap.Uint64("upload_id", upload.ID), zap.Error(err))
	}

	return &dto.DownloadDTO{FilePath: upload.FilePath}, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	order, err := s.findVisibleOrder(ctx, id)
	if err != nil {
		return err
	}
	if order.Status == entities.OrderStatusPaid {
		return apperrors.ErrInvalidTransition
	}
	return s.orderRepository.Delete(ctx, id)
}

// findVisibleOrder loads the order and enforces that only the buyer or an
// admin can see it.
func (s *OrderService) findVisibleOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	order, err := s.orderRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if order.BuyerID != userID && !utils.IsAdmin(ctx) {
		return nil, apperrors.ErrForbidden
	}
	return order, nil
}
