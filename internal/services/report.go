package services

import (
	"context"

	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/entities"
	"marketplace-system/internal/repositories"
	"marketplace-system/pkg/types"
)

type ReportServiceInterface interface {
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
	GetRevenues(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	GetRevenueReport(ctx context.Context, filter entities.ReportFilter) ([]entities.RevenueReportItem, error)
	GetRevenueReportDTOs(ctx context.Context, filter entities.ReportFilter) ([]dto.RevenueReportItemDTO, error)
}

type ReportService struct {
	reportRepository  repositories.ReportRepositoryInterface
	uploadRepository  repositories.UploadRepositoryInterface
	orderRepository   repositories.OrderRepositoryInterface
	missionRepository repositories.MissionRepositoryInterface
	userRepository    repositories.UserRepositoryInterface
	logger            *zap.Logger
}

func NewReportService(
	reportRepository repositories.ReportRepositoryInterface,
	uploadRepository repositories.UploadRepositoryInterface,
	orderRepository repositories.OrderRepositoryInterface,
	missionRepository repositories.MissionRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		reportRepository:  reportRepository,
		uploadRepository:  uploadRepository,
		orderRepository:   orderRepository,
		missionRepository: missionRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

func (s *ReportService) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	usersByRole, err := s.userRepository.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	uploadsByStatus, err := s.uploadRepository.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	uploadsByCategory, err := s.uploadRepository.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	ordersByStatus, err := s.orderRepository.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	missionsByStatus, err := s.missionRepository.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenueBySeller, err := s.orderRepository.SumRevenueBySeller(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsDTO{
		UsersByRole:       usersByRole,
		UploadsByStatus:   uploadsByStatus,
		UploadsByCategory: uploadsByCategory,
		OrdersByStatus:    ordersByStatus,
		MissionsByStatus:  missionsByStatus,
		RevenueBySeller:   revenueBySeller,
	}, nil
}

func (s *ReportService) GetRevenues(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	return s.orderRepository.GetRevenues(ctx, spec)
}

func (s *ReportService) GetRevenueReport(ctx context.Context, filter entities.ReportFilter) ([]entities.RevenueReportItem, error) {
	return s.reportRepository.GetRevenueReport(ctx, filter)
}

func (s *ReportService) GetRevenueReportDTOs(ctx context.Context, filter entities.ReportFilter) ([]dto.RevenueReportItemDTO, error) {
	items, err := s.reportRepository.GetRevenueReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.RevenueReportItemDTO, len(items))
	for i, item := range items {
		dtos[i] = dto.RevenueReportItemDTO{
			RevenueID:   item.RevenueID,
			SellerID:    item.SellerID,
			SellerName:  item.SellerName,
			SellerEmail: item.SellerEmail,
			OrderID:     item.OrderID,
			UploadTitle: item.UploadTitle,
			Amount:      item.Amount,
			CreatedAt:   item.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		}
	}
	return dtos, nil
}
