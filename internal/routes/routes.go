package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marketplace-system/internal/controllers"
	"marketplace-system/internal/listeners"
	"marketplace-system/internal/repositories"
	"marketplace-system/internal/services"
	"marketplace-system/pkg/config"
	"marketplace-system/pkg/eventbus"
	"marketplace-system/pkg/filestorage"
	"marketplace-system/pkg/middleware"
	"marketplace-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	bus *eventbus.Bus,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		return err
	}

	// repositories
	userRepo := repositories.NewUserRepository(dbConn, logger)
	categoryRepo := repositories.NewCategoryRepository(dbConn, logger)
	uploadRepo := repositories.NewUploadRepository(dbConn, logger)
	orderRepo := repositories.NewOrderRepository(dbConn, logger)
	missionRepo := repositories.NewMissionRepository(dbConn, logger)
	notificationRepo := repositories.NewNotificationRepository(dbConn, logger)
	settingRepo := repositories.NewSettingRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// services
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	uploadService := services.NewUploadService(uploadRepo, categoryRepo, fileStorage, bus, logger)
	orderService := services.NewOrderService(orderRepo, uploadRepo, bus, logger)
	missionService := services.NewMissionService(missionRepo, bus, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)
	settingService := services.NewSettingService(settingRepo, cacheRepo, cfg.Settings.CacheTTL, logger)
	reportService := services.NewReportService(reportRepo, uploadRepo, orderRepo, missionRepo, userRepo, logger)

	// listeners
	notificationListener := listeners.NewNotificationListener(notificationService, logger)
	notificationListener.Register(bus)

	// controllers
	authCtrl := controllers.NewAuthController(authService, logger)
	userCtrl := controllers.NewUserController(userService, fileStorage, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	uploadCtrl := controllers.NewUploadController(uploadService, logger)
	orderCtrl := controllers.NewOrderController(orderService, logger)
	missionCtrl := controllers.NewMissionController(missionService, logger)
	notificationCtrl := controllers.NewNotificationController(notificationService, logger)
	settingCtrl := controllers.NewSettingController(settingService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl)
	runUserRouter(secureGroup, userCtrl, authMW)
	runCategoryRouter(api, secureGroup, categoryCtrl, authMW)
	runUploadRouter(api, secureGroup, uploadCtrl, authMW)
	runOrderRouter(secureGroup, orderCtrl, authMW)
	runMissionRouter(api, secureGroup, missionCtrl, authMW)
	runNotificationRouter(secureGroup, notificationCtrl)
	runSettingRouter(secureGroup, settingCtrl, authMW)
	runReportRouter(secureGroup, reportCtrl, authMW)

	return nil
}
