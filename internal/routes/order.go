package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/middleware"
)

func runOrderRouter(secureGroup *echo.Group, ctrl *controllers.OrderController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RestrictTo(entities.RoleAdmin)

	secureGroup.GET("/orders", ctrl.GetOrders, adminOnly)
	secureGroup.GET("/orders/my", ctrl.GetMyOrders)
	secureGroup.GET("/order/:id", ctrl.FindOrder)
	secureGroup.POST("/order", ctrl.CreateOrder)
	secureGroup.POST("/order/:id/pay", ctrl.PayOrder)
	secureGroup.GET("/order/:id/download", ctrl.DownloadOrder)
	secureGroup.DELETE("/order/:id", ctrl.DeleteOrder, adminOnly)
}
