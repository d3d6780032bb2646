package utils

import (
	"context"

	"marketplace-system/pkg/contextkeys"
	apperrors "marketplace-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return role, nil
}

func IsAdmin(ctx context.Context) bool {
	role, err := GetUserRoleFromCtx(ctx)
	return err == nil && role == "admin"
}
