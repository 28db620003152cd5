package app

import (
	"context"
	"fmt"

	"identity-service/db/seeder"
	"identity-service/internal/config/env"
	"identity-service/internal/config/validation"
	"identity-service/internal/constant"
	"identity-service/internal/controller"
	"identity-service/internal/middleware"
	"identity-service/internal/repository"
	"identity-service/internal/route"
	"identity-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	db         *gorm.DB
	web        *fiber.App
	log        *logrus.Logger
	config     *env.Config
	validation *validation.Validation
	redis      *redis.Client
	seeder     *seeder.Seeder
}

func NewApp(log *logrus.Logger, config *env.Config, db *gorm.DB, web *fiber.App, validation *validation.Validation, redis *redis.Client) *BootstrapConfig {
	return &BootstrapConfig{
		db:         db,
		web:        web,
		log:        log,
		config:     config,
		validation: validation,
		redis:      redis,
	}
}

func (app *BootstrapConfig) Bootstrap() {
	// setup repositories
	userRepository := repository.NewUserRepository(app.db)
	roleRepository := repository.NewRoleRepository(app.db)
	permissionRepository := repository.NewPermissionRepository(app.db)
	userDetailRepository := repository.NewUserDetailRepository(app.db)
	blacklistRepository := repository.NewRedisTokenBlacklist(app.redis)

	// setup services
	jwtService := service.NewJwtService(app.log, app.config)
	blacklistService := service.NewBlacklistService(jwtService, blacklistRepository)
	redisService := service.NewRedisService(app.redis, app.log)
	authService := service.NewAuthService(app.db, jwtService, userRepository, roleRepository, blacklistService, app.log)
	userService := service.NewUserService(app.db, userRepository, roleRepository, userDetailRepository, redisService, app.validation, app.log)
	roleService := service.NewRoleService(roleRepository, redisService, app.log)

	// setup controllers
	welcomeController := controller.NewWelcomeController()
	authController := controller.NewAuthController(authService, app.log, app.validation)
	userController := controller.NewUserController(userService, app.log)
	roleController := controller.NewRoleController(roleService, app.log)

	// setup middleware
	app.web.Use(middleware.Cors(app.config))
	authMiddleware := middleware.AuthMiddleware(jwtService, blacklistService, app.log)
	canViewUsers := middleware.RequirePermission(userService, constant.PermCanViewUser, app.log)
	canViewRoles := middleware.RequirePermission(userService, constant.PermCanViewRole, app.log)

	// setup route
	routeConfig := route.NewRouteConfig(app.web)
	routeConfig.WelcomeRoutes(welcomeController)
	routeConfig.RegisterAuthRoutes(authController)
	routeConfig.RegisterUserRoutes(userController, authMiddleware, canViewUsers)
	routeConfig.RegisterRoleRoutes(roleController, authMiddleware, canViewRoles)

	// the seeder goes through the user service so demo accounts get the same
	// validation and hashing as API registrations
	app.seeder = seeder.NewSeeder(app.db, userService, userRepository, roleRepository, permissionRepository, userDetailRepository, app.log)
}

func (app *BootstrapConfig) Run() {
	app.Bootstrap()

	if app.config.Seed.Enabled {
		if err := app.seeder.Run(context.Background()); err != nil {
			app.log.WithError(err).Fatal("Failed to seed database")
		}
	}

	if err := app.web.Listen(fmt.Sprintf(":%d", app.config.Web.Port)); err != nil {
		app.log.Fatalf("Failed to start server: %v", err)
	}
}
