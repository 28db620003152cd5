package controller

import (
	"identity-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type RoleController struct {
	roleService *service.RoleService
	logger      *logrus.Logger
	tracer      trace.Tracer
}

func NewRoleController(roleService *service.RoleService, logger *logrus.Logger) *RoleController {
	return &RoleController{roleService, logger, otel.Tracer("RoleController")}
}

func (c *RoleController) List(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "List")
	defer span.End()

	result, err := c.roleService.List(userContext)
	if err != nil {
		c.logger.WithError(err).Error("error listing roles")
		return err
	}

	return ctx.Type("json").SendString(result)
}
