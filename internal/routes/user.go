package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RestrictTo(entities.RoleAdmin)

	secureGroup.GET("/profile", ctrl.GetProfile)
	secureGroup.PUT("/profile", ctrl.UpdateProfile)
	secureGroup.PUT("/profile/avatar", ctrl.UpdateAvatar)

	secureGroup.GET("/users", ctrl.GetUsers, adminOnly)
	secureGroup.GET("/user/:id", ctrl.FindUser, adminOnly)
	secureGroup.POST("/user", ctrl.CreateUser, adminOnly)
	secureGroup.PUT("/user/:id", ctrl.UpdateUser, adminOnly)
	secureGroup.DELETE("/user/:id", ctrl.DeleteUser, adminOnly)
	secureGroup.PATCH("/user/:id/active", ctrl.ToggleActive, adminOnly)
}
