package route

import (
	"identity-service/internal/controller"

	"github.com/gofiber/fiber/v2"
)

// RouteConfig handles route registration
type RouteConfig struct {
	App *fiber.App
}

// NewRouteConfig initializes the router
func NewRouteConfig(app *fiber.App) *RouteConfig {
	return &RouteConfig{app}
}

func (r *RouteConfig) WelcomeRoutes(welcomeController *controller.WelcomeController) {
	r.App.Get("/", welcomeController.Hello)
}

// RegisterAuthRoutes defines authentication routes
func (r *RouteConfig) RegisterAuthRoutes(authController *controller.AuthController) {
	auth := r.App.Group("/api/auth")
	{
		auth.Post("/register", authController.Register)
		auth.Post("/login", authController.Login)
		auth.Post("/refresh-token", authController.RefreshToken)
		auth.Post("/logout", authController.Logout)
	}
}

// RegisterUserRoutes defines user-related routes. Every endpoint sits behind
// the auth middleware; listing other users additionally requires CanViewUser.
func (r *RouteConfig) RegisterUserRoutes(userController *controller.UserController, authMiddleware, canViewUsers fiber.Handler) {
	user := r.App.Group("/api/users")
	user.Use(authMiddleware)
	{
		user.Get("/", canViewUsers, userController.List)
		user.Get("/me", userController.Me)
		user.Put("/me/extra", userController.UpdateExtra)
	}
}

// RegisterRoleRoutes defines role-related routes behind the auth middleware.
func (r *RouteConfig) RegisterRoleRoutes(roleController *controller.RoleController, authMiddleware, canViewRoles fiber.Handler) {
	role := r.App.Group("/api/roles")
	role.Use(authMiddleware)
	{
		role.Get("/", canViewRoles, roleController.List)
	}
}
