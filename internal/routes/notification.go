package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
)

func runNotificationRouter(secureGroup *echo.Group, ctrl *controllers.NotificationController) {
	secureGroup.GET("/notifications", ctrl.GetMyNotifications)
	secureGroup.PATCH("/notification/:id/read", ctrl.ToggleRead)
	secureGroup.POST("/notifications/read-all", ctrl.MarkAllRead)
	secureGroup.DELETE("/notification/:id", ctrl.DeleteNotification)
}
