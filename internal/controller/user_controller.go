package controller

import (
	"identity-service/internal/dto"
	"identity-service/internal/middleware"
	"identity-service/internal/service"
	"identity-service/internal/utils/errcode"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type UserController struct {
	userService *service.UserService
	logger      *logrus.Logger
	tracer      trace.Tracer
}

func NewUserController(userService *service.UserService, logger *logrus.Logger) *UserController {
	return &UserController{userService, logger, otel.Tracer("UserController")}
}

func (c *UserController) Me(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "Me")
	defer span.End()

	auth := middleware.GetUser(ctx)

	user, err := c.userService.GetUser(userContext, auth.UUID)
	if err != nil {
		c.logger.WithError(err).Error("user not found")
		return err
	}

	return ctx.Type("json").SendString(user)
}

func (c *UserController) List(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "List")
	defer span.End()

	req := new(dto.SearchUserRequest)
	if err := ctx.QueryParser(req); err != nil {
		c.logger.WithError(err).Error("failed to parse request query")
		return errcode.ErrBadRequest
	}
	req.SetDefault()

	users, total, err := c.userService.Search(userContext, req)
	if err != nil {
		c.logger.WithError(err).Error("error searching user")
		return err
	}

	return ctx.JSON(dto.WebResponse[[]*dto.UserResponse]{
		Data: users,
		Paging: &dto.PageMetadata{
			Page:      req.Page,
			Size:      req.Size,
			TotalItem: total,
			TotalPage: int64(math.Ceil(float64(total) / float64(req.Size))),
		},
	})
}

// UpdateExtra replaces the caller's structured profile document. The payload
// is validated inside the service, which the seeder also goes through.
func (c *UserController) UpdateExtra(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "UpdateExtra")
	defer span.End()

	auth := middleware.GetUser(ctx)

	req := new(dto.UpdateExtraRequest)
	if err := ctx.BodyParser(req); err != nil {
		c.logger.WithError(err).Error("failed to parse extra document payload")
		return errcode.ErrBadRequest
	}

	detail, err := c.userService.UpdateExtra(userContext, auth.UUID, req)
	if err != nil {
		c.logger.WithError(err).Error("failed to update extra document")
		return err
	}

	return ctx.JSON(dto.WebResponse[*dto.UserDetailResponse]{Data: detail})
}
