package service

import (
	"context"
	"identity-service/internal/constant"
	"identity-service/internal/dto"
	"identity-service/internal/dto/converter"
	"identity-service/internal/model"
	"identity-service/internal/repository"
	"identity-service/internal/utils/errcode"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	jwtService       *JwtService
	userRepository   *repository.UserRepository
	roleRepository   *repository.RoleRepository
	blacklistService *BlacklistService
	logger           *logrus.Logger
	tracer           trace.Tracer
}

func NewAuthService(
	db *gorm.DB,
	jwtService *JwtService,
	userRepo *repository.UserRepository,
	roleRepo *repository.RoleRepository,
	blacklistService *BlacklistService,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{db, jwtService, userRepo, roleRepo, blacklistService, logger, otel.Tracer("AuthService")}
}

// Login authenticates a user and returns a fresh JWT token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	logger := s.logger.WithContext(spanCtx)

	user := new(model.User)
	if err := s.userRepository.FindByEmail(spanCtx, user, req.Email); err != nil {
		logger.WithError(err).Error("User not found during login")
		return nil, errcode.ErrInvalidEmailOrPassword
	}

	_, passwordSpan := s.tracer.Start(spanCtx, "CompareHashPassword")
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		passwordSpan.End()
		logger.WithError(err).Error("Invalid password attempt")
		return nil, errcode.ErrInvalidEmailOrPassword
	}
	passwordSpan.End()

	accessToken, err := s.jwtService.GenerateAccessToken(spanCtx, user)
	if err != nil {
		logger.WithError(err).Error("Error generating access token")
		return nil, errcode.ErrAccessTokenGeneration
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(spanCtx, user)
	if err != nil {
		logger.WithError(err).Error("Error generating refresh token")
		return nil, errcode.ErrRefreshTokenGeneration
	}

	return &dto.LoginResponse{
		TokenResponse: dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken},
	}, nil
}

// Register creates a new user with a hashed password and the default role.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	logger := s.logger.WithContext(spanCtx)
	tx := s.db.Begin()
	txCtx := context.WithValue(spanCtx, repository.TxKey, tx)

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.WithField("panic", r).Error("Recovered from panic during registration")
		}
	}()

	existingCount, err := s.userRepository.CountByEmail(txCtx, req.Email)
	if err != nil {
		tx.Rollback()
		logger.WithError(err).Error("Database error checking existing email")
		return nil, errcode.ErrDatabaseError
	}
	if existingCount > 0 {
		tx.Rollback()
		logger.Warn("Attempt to register an already existing email")
		return nil, errcode.ErrUserAlreadyExists
	}

	existingCount, err = s.userRepository.CountByUsername(txCtx, req.Username)
	if err != nil {
		tx.Rollback()
		logger.WithError(err).Error("Database error checking existing username")
		return nil, errcode.ErrDatabaseError
	}
	if existingCount > 0 {
		tx.Rollback()
		logger.Warn("Attempt to register an already existing username")
		return nil, errcode.ErrUserAlreadyExists
	}

	defaultRole := new(model.Role)
	if err := s.roleRepository.FindDefault(txCtx, defaultRole); err != nil {
		tx.Rollback()
		logger.WithError(err).Error("No default role configured for registration")
		return nil, errcode.ErrDefaultRoleNotFound
	}

	_, hashSpan := s.tracer.Start(spanCtx, "HashPassword")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	hashSpan.End()
	if err != nil {
		tx.Rollback()
		logger.WithError(err).Error("Failed to hash password")
		return nil, errcode.ErrPasswordEncryption
	}

	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Roles:    []model.Role{*defaultRole},
	}

	if err := s.userRepository.Create(txCtx, &user); err != nil {
		tx.Rollback()
		logger.WithError(err).Error("Error creating user")
		return nil, errcode.ErrUserCreationFailed
	}

	if err := tx.Commit().Error; err != nil {
		logger.WithError(err).Error("Transaction commit failed")
		return nil, errcode.ErrDatabaseTransaction
	}

	return converter.UserToResponse(&user), nil
}

// RefreshToken rotates a valid refresh token into a new token pair. The old
// refresh token is blacklisted so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.RefreshTokenResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.RefreshToken")
	defer span.End()
	logger := s.logger.WithContext(spanCtx)

	if err := s.blacklistService.IsTokenBlacklisted(spanCtx, refreshToken, constant.TokenTypeRefresh); err != nil {
		logger.WithError(err).Error("Refresh token already revoked")
		return nil, errcode.ErrUnauthorized
	}

	claims, err := s.jwtService.ValidateRefreshToken(spanCtx, refreshToken)
	if err != nil {
		logger.WithError(err).Error("Invalid refresh token")
		return nil, errcode.ErrInvalidToken
	}

	// Reload the user so the new tokens carry the current profile claims.
	user := new(model.User)
	if err := s.userRepository.FindByUUID(spanCtx, user, claims.UUID); err != nil {
		logger.WithError(err).Error("Token subject no longer exists")
		return nil, errcode.ErrUnauthorized
	}

	accessToken, err := s.jwtService.GenerateAccessToken(spanCtx, user)
	if err != nil {
		logger.WithError(err).Error("Error generating new access token")
		return nil, errcode.ErrAccessTokenGeneration
	}

	newRefreshToken, err := s.jwtService.GenerateRefreshToken(spanCtx, user)
	if err != nil {
		logger.WithError(err).Error("Error generating new refresh token")
		return nil, errcode.ErrRefreshTokenGeneration
	}

	if err := s.blacklistService.Add(spanCtx, refreshToken, constant.TokenTypeRefresh); err != nil {
		logger.WithError(err).Error("Failed to blacklist old refresh token")
		return nil, err
	}

	return &dto.RefreshTokenResponse{
		TokenResponse: dto.TokenResponse{AccessToken: accessToken, RefreshToken: newRefreshToken},
	}, nil
}

// Logout invalidates access and refresh tokens.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.Logout")
	defer span.End()
	logger := s.logger.WithContext(spanCtx)

	if err := s.blacklistService.Add(spanCtx, accessToken, constant.TokenTypeAccess); err != nil {
		logger.WithError(err).Error("Failed to invalidate access token")
		return err
	}

	if err := s.blacklistService.Add(spanCtx, refreshToken, constant.TokenTypeRefresh); err != nil {
		logger.WithError(err).Error("Failed to invalidate refresh token")
		return err
	}

	return nil
}
