package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/services"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/utils"
)

type MissionController struct {
	missionService services.MissionServiceInterface
	logger         *zap.Logger
}

func NewMissionController(missionService services.MissionServiceInterface, logger *zap.Logger) *MissionController {
	return &MissionController{missionService: missionService, logger: logger}
}

func (c *MissionController) GetMissions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	spec, err := utils.ParseQuerySpec(ctx.Request().URL.Query(), 0)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.GetMissions(reqCtx, spec)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, res.List, res.Pagination, "Successfully")
}

func (c *MissionController) SearchMissions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	spec, err := utils.ParseQuerySpec(ctx.Request().URL.Query(), 0)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.SearchMissions(reqCtx, spec)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, res.List, res.Pagination, "Successfully")
}

func (c *MissionController) FindMission(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.FindMission(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *MissionController) GetApplicants(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.GetApplicants(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *MissionController) CreateMission(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateMissionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("request binding failed: %w", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.CreateMission(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully created", http.StatusCreated)
}

func (c *MissionController) UpdateMission(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMissionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("request binding failed: %w", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.UpdateMission(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully updated", http.StatusOK)
}

func (c *MissionController) DeleteMission(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.missionService.DeleteMission(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Successfully deleted", http.StatusOK)
}

func (c *MissionController) Apply(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.missionService.Apply(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Application submitted", http.StatusOK)
}

func (c *MissionController) Accept(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AcceptApplicantDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("request binding failed: %w", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.Accept(reqCtx, id, payload.ApplicantID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Applicant accepted", http.StatusOK)
}

func (c *MissionController) Start(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.Start(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Mission started", http.StatusOK)
}

func (c *MissionController) Complete(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.missionID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.missionService.Complete(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Mission completed", http.StatusOK)
}

func (c *MissionController) missionID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid mission ID format: %w", apperrors.ErrBadRequest)
	}
	return id, nil
}
