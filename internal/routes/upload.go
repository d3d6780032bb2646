package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/middleware"
)

func runUploadRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.UploadController, authMW *middleware.AuthMiddleware) {
	adminOnly := authMW.RestrictTo(entities.RoleAdmin)
	sellerOnly := authMW.RestrictTo(entities.RolePhotographer, entities.RoleAdmin)

	api.GET("/uploads", ctrl.GetUploads)
	api.GET("/uploads/search", ctrl.SearchUploads)
	api.GET("/upload/:id", ctrl.FindUpload)

	secureGroup.POST("/upload", ctrl.CreateUpload, sellerOnly)
	secureGroup.PUT("/upload/:id", ctrl.UpdateUpload)
	secureGroup.DELETE("/upload/:id", ctrl.DeleteUpload)
	secureGroup.PATCH("/upload/:id/review", ctrl.ReviewUpload, adminOnly)
	secureGroup.PATCH("/upload/:id/featured", ctrl.ToggleFeatured, adminOnly)
}
