package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

// ListBody is the list/search payload: results is the number of items on this
// page, paginationResults the derived page metadata, data the records.
type ListBody struct {
	Results           int              `json:"results"`
	PaginationResults types.Pagination `json:"paginationResults"`
	Data              interface{}      `json:"data"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

func ListResponse(ctx echo.Context, data []map[string]interface{}, pagination types.Pagination, message string) error {
	if data == nil {
		data = []map[string]interface{}{}
	}
	return ctx.JSON(http.StatusOK, &HTTPResponse{
		Status:  true,
		Message: message,
		Body: ListBody{
			Results:           len(data),
			PaginationResults: pagination,
			Data:              data,
		},
	})
}

// errorStatusList maps sentinel errors onto HTTP status codes.
var errorStatusList = map[error]int{
	apperrors.ErrBadRequest:            http.StatusBadRequest,
	apperrors.ErrInvalidQueryParameter: http.StatusBadRequest,
	apperrors.ErrInvalidSortField:      http.StatusBadRequest,
	apperrors.ErrEmptySearchKeyword:    http.StatusBadRequest,
	apperrors.ErrEmptyAuthHeader:       http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrInvalidCredentials:    http.StatusUnauthorized,
	apperrors.ErrUnauthorized:          http.StatusUnauthorized,
	apperrors.ErrInvalidToken:          http.StatusUnauthorized,
	apperrors.ErrTokenExpired:          http.StatusUnauthorized,
	apperrors.ErrTokenNotYetValid:      http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:      http.StatusUnauthorized,
	apperrors.ErrForbidden:             http.StatusForbidden,
	apperrors.ErrNotFound:              http.StatusNotFound,
	apperrors.ErrEmailTaken:            http.StatusConflict,
	apperrors.ErrInvalidTransition:     http.StatusConflict,
	apperrors.ErrStoreUnavailable:      http.StatusServiceUnavailable,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on rule '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "validation failed: " + strings.Join(msgs, "; "),
		})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": invalidInput.Message,
		})
	}

	for sentinel, statusCode := range errorStatusList {
		if errors.Is(err, sentinel) {
			return c.JSON(statusCode, map[string]interface{}{
				"status":  false,
				"message": sentinel.Error(),
			})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "internal server error",
	})
}
