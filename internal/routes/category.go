package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/middleware"
)

func runCategoryRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.CategoryController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RestrictTo(entities.RoleAdmin)

	api.GET("/categories", ctrl.GetCategories)
	api.GET("/category/:id", ctrl.FindCategory)

	secureGroup.POST("/category", ctrl.CreateCategory, adminOnly)
	secureGroup.PUT("/category/:id", ctrl.UpdateCategory, adminOnly)
	secureGroup.DELETE("/category/:id", ctrl.DeleteCategory, adminOnly)
}
