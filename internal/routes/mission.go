package routes

import (
	"github.com/labstack/echo/v4"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/entities"
	"marketplace-system/pkg/middleware"
)

func runMissionRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.MissionController, authMW *middleware.AuthMiddleware) {
	api.GET("/missions", ctrl.GetMissions)
	api.GET("/missions/search", ctrl.SearchMissions)
	api.GET("/mission/:id", ctrl.FindMission)

	secureGroup.GET("/mission/:id/applicants", ctrl.GetApplicants)
	secureGroup.POST("/mission", ctrl.CreateMission)
	secureGroup.PUT("/mission/:id", ctrl.UpdateMission)
	secureGroup.DELETE("/mission/:id", ctrl.DeleteMission)
	secureGroup.POST("/mission/:id/apply", ctrl.Apply, authMW.RestrictTo(entities.RolePhotographer))
	secureGroup.POST("/mission/:id/accept", ctrl.Accept)
	secureGroup.POST("/mission/:id/start", ctrl.Start)
	secureGroup.POST("/mission/:id/complete", ctrl.Complete)
}
