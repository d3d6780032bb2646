package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marketplace-system/internal/dto"
	"marketplace-system/internal/services"
	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/utils"
)

type SettingController struct {
	settingService services.SettingServiceInterface
	logger         *zap.Logger
}

func NewSettingController(settingService services.SettingServiceInterface, logger *zap.Logger) *SettingController {
	return &SettingController{settingService: settingService, logger: logger}
}

func (c *SettingController) GetSettings(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.settingService.GetSettings(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *SettingController) GetSetting(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	key := ctx.Param("key")
	if key == "" {
		return utils.ErrorResponse(ctx, fmt.Errorf("setting key is required: %w", apperrors.ErrBadRequest), c.logger)
	}

	res, err := c.settingService.GetSetting(reqCtx, key)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *SettingController) CreateSetting(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateSettingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("request binding failed: %w", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.settingService.CreateSetting(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully created", http.StatusCreated)
}

func (c *SettingController) UpdateSetting(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	key := ctx.Param("key")
	if key == "" {
		return utils.ErrorResponse(ctx, fmt.Errorf("setting key is required: %w", apperrors.ErrBadRequest), c.logger)
	}

	var payload dto.UpdateSettingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("request binding failed: %w", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.settingService.UpdateSetting(reqCtx, key, payload.Value)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully updated", http.StatusOK)
}

func (c *SettingController) DeleteSetting(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	key := ctx.Param("key")
	if key == "" {
		return utils.ErrorResponse(ctx, fmt.Errorf("setting key is required: %w", apperrors.ErrBadRequest), c.logger)
	}

	if err := c.settingService.DeleteSetting(reqCtx, key); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Successfully deleted", http.StatusOK)
}
