package middleware

import (
	"errors"
	"identity-service/internal/service"
	"identity-service/internal/utils/errcode"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

// RequirePermission guards a route behind a named permission. It must run
// after AuthMiddleware so the caller's claims are present in locals.
func RequirePermission(userService *service.UserService, permission string, log *logrus.Logger) fiber.Handler {
	tracer := otel.Tracer("PermissionMiddleware")
	return func(c *fiber.Ctx) error {
		spanCtx, span := tracer.Start(c.UserContext(), "RequirePermission")
		defer span.End()

		claims := GetUser(c)

		if err := userService.VerifyPermission(spanCtx, claims.UUID, permission); err != nil {
			log.WithContext(spanCtx).WithFields(logrus.Fields{
				"user":       claims.UUID,
				"permission": permission,
			}).Warn("permission check failed")

			// A token whose subject no longer exists is an auth problem,
			// not a missing resource.
			if errors.Is(err, errcode.ErrUserNotFound) {
				return errcode.ErrUnauthorized
			}
			return err
		}

		return c.Next()
	}
}
