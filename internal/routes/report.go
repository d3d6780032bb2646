package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/middleware"
)

func runReportRouter(secureGroup *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RestrictTo(entities.RoleAdmin)

	secureGroup.GET("/reports/stats", ctrl.GetStats, adminOnly)
	secureGroup.GET("/reports/revenues", ctrl.GetRevenues, adminOnly)
	secureGroup.GET("/reports/revenue", ctrl.GetRevenueReport, adminOnly)
}
