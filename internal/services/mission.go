package services

import (
	"context"
	"strings"
	"time"

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

type MissionServiceInterface interface {
	GetMissions(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	SearchMissions(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error)
	FindMission(ctx context.Context, id uint64) (*dto.MissionDTO, error)
	GetApplicants(ctx context.Context, missionID uint64) ([]dto.MissionApplicantDTO, error)
	CreateMission(ctx context.Context, payload dto.CreateMissionDTO) (*dto.MissionDTO, error)
	UpdateMission(ctx context.Context, id uint64, payload dto.UpdateMissionDTO) (*dto.MissionDTO, error)
	DeleteMission(ctx context.Context, id uint64) error
	Apply(ctx context.Context, missionID uint64) error
	Accept(ctx context.Context, missionID, applicantID uint64) (*dto.MissionDTO, error)
	Start(ctx context.Context, missionID uint64) (*dto.MissionDTO, error)
	Complete(ctx context.Context, missionID uint64) (*dto.MissionDTO, error)
}

type MissionService struct {
	missionRepository repositories.MissionRepositoryInterface
	bus               *eventbus.Bus
	logger            *zap.Logger
}

func NewMissionService(
	missionRepository repositories.MissionRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) MissionServiceInterface {
	return &MissionService{
		missionRepository: missionRepository,
		bus:               bus,
		logger:            logger,
	}
}

func (s *MissionService) GetMissions(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	return s.missionRepository.GetMissions(ctx, spec)
}

func (s *MissionService) SearchMissions(ctx context.Context, spec types.QuerySpec) (*dto.ListResult, error) {
	if strings.TrimSpace(spec.Keyword) == "" {
		return nil, apperrors.ErrEmptySearchKeyword
	}
	return s.missionRepository.GetMissions(ctx, spec)
}

func (s *MissionService) FindMission(ctx context.Context, id uint64) (*dto.MissionDTO, error) {
	mission, err := s.missionRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := repositories.MissionEntityToDTO(mission)
	return &result, nil
}

func (s *MissionService) GetApplicants(ctx context.Context, missionID uint64) ([]dto.MissionApplicantDTO, error) {
	mission, err := s.missionRepository.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if mission.ClientID != userID && !utils.IsAdmin(ctx) {
		return nil, apperrors.ErrForbidden
	}
	return s.missionRepository.GetApplicants(ctx, missionID)
}

func (s *MissionService) CreateMission(ctx context.Context, payload dto.CreateMissionDTO) (*dto.MissionDTO, error) {
	clientID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	mission := &entities.Mission{
		ClientID:    clientID,
		Title:       payload.Title,
		Description: payload.Description,
		Budget:      payload.Budget,
		Status:      entities.MissionStatusOpen,
	}
	if payload.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, payload.Deadline)
		if err != nil {
			return nil, apperrors.NewHttpError(400, "deadline must be RFC3339", err, nil)
		}
		mission.Deadline = &deadline
	}

	id, err := s.missionRepository.Create(ctx, mission)
	if err != nil {
		return nil, err
	}
	mission.ID = id

	result := repositories.MissionEntityToDTO(mission)
	return &result, nil
}

func (s *MissionService) UpdateMission(ctx context.Context, id uint64, payload dto.UpdateMissionDTO) (*dto.MissionDTO, error) {
	mission, err := s.missionRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkClient(ctx, mission); err != nil {
		return nil, err
	}
	// editable only before anyone is assigned
	if mission.Status != entities.MissionStatusOpen {
		return nil, apperrors.ErrInvalidTransition
	}

	utils.PatchString(&mission.Title, payload.Title)
	utils.PatchString(&mission.Description, payload.Description)
	utils.PatchFloat64(&mission.Budget, payload.Budget)
	if payload.Deadline.Valid {
		deadline, err := time.Parse(time.RFC3339, payload.Deadline.String)
		if err != nil {
			return nil, apperrors.NewHttpError(400, "deadline must be RFC3339", err, nil)
		}
		mission.Deadline = &deadline
	}

	if err := s.missionRepository.Update(ctx, mission); err != nil {
		return nil, err
	}
	result := repositories.MissionEntityToDTO(mission)
	return &result, nil
}

func (s *MissionService) DeleteMission(ctx context.Context, id uint64) error {
	mission, err := s.missionRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkClient(ctx, mission); err != nil {
		return err
	}
	if mission.Status == entities.MissionStatusInProgress {
		return apperrors.ErrInvalidTransition
	}
	return s.missionRepository.Delete(ctx, id)
}

// Apply registers the caller as an applicant on an open mission. Only
// photographers may apply.
func (s *MissionService) Apply(ctx context.Context, missionID uint64) error {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	role, err := utils.GetUserRoleFromCtx(ctx)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	if role != entities.RolePhotographer {
		return apperrors.ErrForbidden
	}

	mission, err := s.missionRepository.FindByID(ctx, missionID)
	if err != nil {
		return err
	}
	if mission.Status != entities.MissionStatusOpen {
		return apperrors.ErrInvalidTransition
	}
	if mission.ClientID == userID {
		return apperrors.NewHttpError(400, "cannot apply to your own mission", apperrors.ErrBadRequest, nil)
	}

	if err := s.missionRepository.AddApplicant(ctx, missionID, userID); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.MissionEvent{
		EventName:   events.MissionAppliedEventName,
		MissionID:   mission.ID,
		Title:       mission.Title,
		ClientID:    mission.ClientID,
		ActorID:     userID,
		RecipientID: mission.ClientID,
	})
	return nil
}

// Accept moves open -> assigned with the chosen applicant.
func (s *MissionService) Accept(ctx context.Context, missionID, applicantID uint64) (*dto.MissionDTO, error) {
	mission, err := s.missionRepository.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkClient(ctx, mission); err != nil {
		return nil, err
	}
	if !entities.CanTransitionMission(mission.Status, entities.MissionStatusAssigned) {
		return nil, apperrors.ErrInvalidTransition
	}

	applied, err := s.missionRepository.HasApplicant(ctx, missionID, applicantID)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.NewHttpError(400, "user has not applied to this mission",
			apperrors.ErrBadRequest, map[string]interface{}{"applicant_id": applicantID})
	}

	if err := s.missionRepository.SetStatus(ctx, missionID, entities.MissionStatusAssigned, &applicantID); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.MissionEvent{
		EventName:   events.MissionAcceptedEventName,
		MissionID:   mission.ID,
		Title:       mission.Title,
		ClientID:    mission.ClientID,
		ActorID:     mission.ClientID,
		RecipientID: applicantID,
	})
	return s.FindMission(ctx, missionID)
}

// Start moves assigned -> in_progress; only the assignee may do it.
func (s *MissionService) Start(ctx context.Context, missionID uint64) (*dto.MissionDTO, error) {
	return s.advance(ctx, missionID, entities.MissionStatusInProgress, events.MissionStartedEventName)
}

// Complete moves in_progress -> completed; only the assignee may do it.
func (s *MissionService) Complete(ctx context.Context, missionID uint64) (*dto.MissionDTO, error) {
	return s.advance(ctx, missionID, entities.MissionStatusCompleted, events.MissionCompletedEventName)
}

func (s *MissionService) advance(ctx context.Context, missionID uint64, target, eventName string) (*dto.MissionDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	mission, err := s.missionRepository.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission.AssigneeID == nil || *mission.AssigneeID != userID {
		return nil, apperrors.ErrForbidden
	}
	if !entities.CanTransitionMission(mission.Status, target) {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.missionRepository.SetStatus(ctx, missionID, target, nil); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.MissionEvent{
		EventName:   eventName,
		MissionID:   mission.ID,
		Title:       mission.Title,
		ClientID:    mission.ClientID,
		ActorID:     userID,
		RecipientID: mission.ClientID,
	})
	s.logger.Info("mission status advanced",
		zap.Uint64("mission_id", missionID), zap.String("status", target))

	return s.FindMission(ctx, missionID)
}

func (s *MissionService) checkClient(ctx context.Context, mission *entities.Mission) error {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	if mission.ClientID != userID && !utils.IsAdmin(ctx) {
		return apperrors.ErrForbidden
	}
	return nil
}
