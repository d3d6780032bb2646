package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/middleware"
)

func runSettingRouter(secureGroup *echo.Group, ctrl *controllers.SettingController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RestrictTo(entities.RoleAdmin)

	secureGroup.GET("/settings", ctrl.GetSettings, adminOnly)
	secureGroup.GET("/setting/:key", ctrl.GetSetting, adminOnly)
	secureGroup.POST("/setting", ctrl.CreateSetting, adminOnly)
	secureGroup.PUT("/setting/:key", ctrl.UpdateSetting, adminOnly)
	secureGroup.DELETE("/setting/:key", ctrl.DeleteSetting, adminOnly)
}
