package controller

import (
	"identity-service/internal/config/validation"
	"identity-service/internal/dto"
	"identity-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type AuthController struct {
	AuthService *service.AuthService
	Logger      *logrus.Logger
	Validation  *validation.Validation
	Tracer      trace.Tracer
}

func NewAuthController(authService *service.AuthService, logger *logrus.Logger, validation *validation.Validation) *AuthController {
	return &AuthController{authService, logger, validation, otel.Tracer("AuthController")}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Login")
	defer span.End()

	req := new(dto.LoginRequest)
	if err := c.Validation.ParseAndValidate(ctx, req); err != nil {
		c.Logger.WithError(err).Warn("Invalid login payload")
		return err
	}

	token, err := c.AuthService.Login(userContext, req)
	if err != nil {
		c.Logger.WithError(err).Warn("Invalid login attempt")
		return err
	}

	return ctx.JSON(dto.WebResponse[*dto.LoginResponse]{Data: token})
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Register")
	defer span.End()

	req := new(dto.RegisterRequest)
	if err := c.Validation.ParseAndValidate(ctx, req); err != nil {
		c.Logger.WithError(err).Warn("Invalid registration payload")
		return err
	}

	user, err := c.AuthService.Register(userContext, req)
	if err != nil {
		c.Logger.WithError(err).Warn("User registration failed")
		return err
	}

	return ctx.JSON(dto.WebResponse[*dto.UserResponse]{Data: user})
}

func (c *AuthController) RefreshToken(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "RefreshToken")
	defer span.End()

	req := new(dto.RefreshTokenRequest)
	if err := c.Validation.ParseAndValidate(ctx, req); err != nil {
		c.Logger.WithError(err).Warn("Invalid refresh token payload")
		return err
	}

	token, err := c.AuthService.RefreshToken(userContext, req.RefreshToken)
	if err != nil {
		c.Logger.WithError(err).Warn("Invalid refresh token attempt")
		return err
	}

	return ctx.JSON(dto.WebResponse[*dto.RefreshTokenResponse]{Data: token})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Logout")
	defer span.End()

	req := new(dto.LogoutRequest)
	if err := c.Validation.ParseAndValidate(ctx, req); err != nil {
		c.Logger.WithError(err).Warn("Invalid logout payload")
		return err
	}

	if err := c.AuthService.Logout(userContext, req.AccessToken, req.RefreshToken); err != nil {
		c.Logger.WithError(err).Error("Failed to logout")
		return err
	}

	return ctx.JSON(dto.WebResponse[string]{Data: "Logout successful"})
}
