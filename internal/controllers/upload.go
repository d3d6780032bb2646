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

type UploadController struct {
	uploadService services.UploadServiceInterface
	logger        *zap.Logger
}

func NewUploadController(uploadService services.UploadServiceInterface, logger *zap.Logger) *UploadController {
	return &UploadController{uploadService: uploadService, logger: logger}
}

func (c *UploadController) GetUploads(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	spec, err := utils.ParseQuerySpec(ctx.Request().URL.Query(), 0)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.uploadService.GetUploads(reqCtx, spec)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, res.List, res.Pagination, "Successfully")
}

func (c *UploadController) SearchUploads(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	spec, err := utils.ParseQuerySpec(ctx.Request().URL.Query(), 0)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.uploadService.SearchUploads(reqCtx, spec)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, res.List, res.Pagination, "Successfully")
}

func (c *UploadController) FindUpload(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("invalid upload ID format: %w", apperrors.ErrBadRequest), c.logger)
	}

	res, err := c.uploadService.FindUpload(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

// CreateUpload reads a multipart form: metadata fields plus the asset file and
// an optional preview image.
func (c *UploadController) CreateUpload(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	payload, err := c.parseUploadForm(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "file is required", apperrors.ErrBadRequest, nil),
			c.logger)
	}
	preview, err := ctx.FormFile("preview")
	if err != nil {
		preview = nil
	}

	res, err := c.uploadService.CreateUpload(reqCtx, payload, file, preview)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully created", http.StatusCreated)
}

func (c *UploadController) parseUploadForm(ctx echo.Context) (dto.CreateUploadDTO, error) {
	var payload dto.CreateUploadDTO

	payload.Title = ctx.FormValue("title")
	payload.Description = ctx.FormValue("description")
	payload.Tags = ctx.FormValue("tags")

	categoryID, err := strconv.ParseUint(ctx.FormValue("category_id"), 10, 64)
	if err != nil {
		return payload, fmt.Errorf("invalid category_id: %w", apperrors.ErrBadRequest)
	}
	payload.CategoryID = categoryID

	price, err := strconv.ParseFloat(ctx.FormValue("price"), 64)
	if err != nil {
		return payload, fmt.Errorf("invalid price: %w", apperrors.ErrBadRequest)
	}
	payload.Price = price

	return payload, nil
}

func (c *UploadController) UpdateUpload(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("invalid upload ID format: %w", apperrors.ErrBadRequest), c.logger)
	}

	var payload dto.UpdateUploadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("request binding failed: %w", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.uploadService.UpdateUpload(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully updated", http.StatusOK)
}

func (c *UploadController) DeleteUpload(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("invalid upload ID format: %w", apperrors.ErrBadRequest), c.logger)
	}

	if err := c.uploadService.DeleteUpload(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Successfully deleted", http.StatusOK)
}

func (c *UploadController) ReviewUpload(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("invalid upload ID format: %w", apperrors.ErrBadRequest), c.logger)
	}

	var payload dto.ReviewUploadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("request binding failed: %w", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.uploadService.ReviewUpload(reqCtx, id, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully reviewed", http.StatusOK)
}

func (c *UploadController) ToggleFeatured(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("invalid upload ID format: %w", apperrors.ErrBadRequest), c.logger)
	}

	isFeatured, err := c.uploadService.ToggleFeatured(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]bool{"is_featured": isFeatured}, "Successfully toggled", http.StatusOK)
}
