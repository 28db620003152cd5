package service

import (
	"context"
	"errors"
	"fmt"
	"identity-service/internal/config/validation"
	"identity-service/internal/dto"
	"identity-service/internal/dto/converter"
	"identity-service/internal/model"
	"identity-service/internal/repository"
	"identity-service/internal/utils/errcode"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	uow                  *repository.UnitOfWork
	userRepository       *repository.UserRepository
	roleRepository       *repository.RoleRepository
	userDetailRepository *repository.UserDetailRepository
	redisService         *RedisService
	validation           *validation.Validation
	log                  *logrus.Logger
	tracer               trace.Tracer
	hashPassword         func(password []byte, cost int) ([]byte, error)
}

func NewUserService(
	db *gorm.DB,
	userRepository *repository.UserRepository,
	roleRepository *repository.RoleRepository,
	userDetailRepository *repository.UserDetailRepository,
	redisService *RedisService,
	validation *validation.Validation,
	log *logrus.Logger,
) *UserService {
	return &UserService{
		uow:                  repository.NewUnitOfWork(db),
		userRepository:       userRepository,
		roleRepository:       roleRepository,
		userDetailRepository: userDetailRepository,
		redisService:         redisService,
		validation:           validation,
		log:                  log,
		tracer:               otel.Tracer("UserService"),
		hashPassword:         bcrypt.GenerateFromPassword,
	}
}

func userCacheKey(uuid string) string {
	return fmt.Sprintf("user:me:%s", uuid)
}

// GetUser retrieves a user profile by UUID as a ready-to-send JSON document,
// served from Redis when cached.
func (s *UserService) GetUser(ctx context.Context, uuid string) (result string, err error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.GetUser")
	defer span.End()

	logger := s.log.WithContext(spanCtx)
	cacheKey := userCacheKey(uuid)

	cachedResponse, found := s.redisService.Get(spanCtx, cacheKey)
	if found {
		logger.Info("User profile retrieved from Redis cache")
		return cachedResponse, nil
	}

	user := new(model.User)
	if err = s.userRepository.FindByUUID(spanCtx, user, uuid); err != nil {
		logger.WithError(err).Warn("Failed to find user by UUID")
		return "", errcode.ErrUserNotFound
	}

	result, err = s.redisService.Set(spanCtx, cacheKey, dto.WebResponse[*dto.UserResponse]{
		Data: converter.UserToResponse(user),
	}, 5*time.Minute)
	if err != nil {
		logger.WithError(err).Warn("Failed to save user response to Redis")
		if result == "" {
			return "", errcode.ErrInternalServerError
		}
	}

	return result, nil
}

// Search retrieves users based on search criteria.
func (s *UserService) Search(ctx context.Context, request *dto.SearchUserRequest) ([]*dto.UserResponse, int64, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.Search")
	defer span.End()

	if err := s.validation.Validate(request); err != nil {
		return nil, 0, err
	}

	users, total, err := s.userRepository.Search(spanCtx, request)
	if err != nil {
		s.log.WithContext(spanCtx).WithError(err).Error("Error retrieving users")
		return nil, 0, errcode.ErrUserSearchFailed
	}

	_, convertSpan := s.tracer.Start(spanCtx, "ConvertUsersToDTO")
	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = converter.UserToResponse(user)
	}
	convertSpan.End()

	return responses, total, nil
}

// CreateUser creates a new user and assigns the requested roles. The seeder
// calls it directly, so the request is validated here rather than relying on
// the HTTP layer.
func (s *UserService) CreateUser(ctx context.Context, request *dto.CreateUserRequest) (*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.CreateUser")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	if err := s.validation.Validate(request); err != nil {
		return nil, err
	}

	count, err := s.userRepository.CountByEmail(spanCtx, request.Email)
	if err != nil {
		logger.WithError(err).Error("Failed to check email existence")
		return nil, errcode.ErrInternalServerError
	}
	if count > 0 {
		logger.Warn("Attempt to add an already existing email")
		return nil, errcode.ErrUserAlreadyExists
	}

	count, err = s.userRepository.CountByUsername(spanCtx, request.Username)
	if err != nil {
		logger.WithError(err).Error("Failed to check username existence")
		return nil, errcode.ErrInternalServerError
	}
	if count > 0 {
		logger.Warn("Attempt to add an already existing username")
		return nil, errcode.ErrUserAlreadyExists
	}

	roles, err := s.resolveRoles(spanCtx, request.Roles)
	if err != nil {
		return nil, err
	}

	_, hashSpan := s.tracer.Start(spanCtx, "HashPassword")
	hashedPassword, err := s.hashPassword([]byte(request.Password), bcrypt.DefaultCost)
	hashSpan.End()
	if err != nil {
		logger.WithError(err).Error("Failed to hash password")
		return nil, errcode.ErrPasswordEncryption
	}

	user := &model.User{
		Username: request.Username,
		Email:    request.Email,
		Password: string(hashedPassword),
		FullName: request.FullName,
		Roles:    roles,
	}

	if err := s.userRepository.Create(spanCtx, user); err != nil {
		logger.WithError(err).Error("Failed to create user")
		return nil, errcode.ErrInternalServerError
	}

	return converter.UserToResponse(user), nil
}

// UpdateUser updates a user's profile fields and, when a role list is given,
// replaces the user's role assignments. Both writes commit in one
// transaction.
func (s *UserService) UpdateUser(ctx context.Context, uuid string, request *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.UpdateUser")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	if err := s.validation.Validate(request); err != nil {
		return nil, err
	}

	user := new(model.User)
	if err := s.userRepository.FindByUUID(spanCtx, user, uuid); err != nil {
		logger.WithError(err).Warn("Failed to find user by UUID")
		return nil, errcode.ErrUserNotFound
	}

	// Detach the preloaded associations so Save only touches the users table.
	currentRoles := user.Roles
	user.Roles = nil
	user.Detail = nil

	user.FullName = request.FullName
	user.PhoneNumber = request.PhoneNumber

	err := s.uow.Do(spanCtx, func(txCtx context.Context) error {
		if err := s.userRepository.Update(txCtx, user); err != nil {
			logger.WithError(err).Error("Failed to update user")
			return errcode.ErrInternalServerError
		}
		if request.Roles == nil {
			return nil
		}
		roles, err := s.resolveRoles(txCtx, request.Roles)
		if err != nil {
			return err
		}
		if err := s.userRepository.ReplaceRoles(txCtx, user, roles); err != nil {
			logger.WithError(err).Error("Failed to replace user roles")
			return errcode.ErrInternalServerError
		}
		user.Roles = roles
		return nil
	})
	if err != nil {
		return nil, err
	}
	if request.Roles == nil {
		user.Roles = currentRoles
	}

	if err := s.redisService.Delete(spanCtx, userCacheKey(uuid)); err != nil {
		logger.WithError(err).Warn("Failed to invalidate cached user profile")
	}

	return converter.UserToResponse(user), nil
}

// DeleteUser deletes a user by UUID.
func (s *UserService) DeleteUser(ctx context.Context, uuid string) error {
	spanCtx, span := s.tracer.Start(ctx, "UserService.DeleteUser")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	user := new(model.User)
	if err := s.userRepository.FindByUUID(spanCtx, user, uuid); err != nil {
		logger.WithError(err).Warn("Failed to find user by UUID")
		return errcode.ErrUserNotFound
	}

	if err := s.userRepository.Delete(spanCtx, user); err != nil {
		logger.WithError(err).Error("Failed to delete user")
		return errcode.ErrInternalServerError
	}

	if err := s.redisService.Delete(spanCtx, userCacheKey(uuid)); err != nil {
		logger.WithError(err).Warn("Failed to invalidate cached user profile")
	}

	return nil
}

// UpdateExtra replaces the structured attribute document on the user's
// detail row, creating the row if the user has none yet.
func (s *UserService) UpdateExtra(ctx context.Context, uuid string, request *dto.UpdateExtraRequest) (*dto.UserDetailResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "UserService.UpdateExtra")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	if err := s.validation.Validate(request); err != nil {
		return nil, err
	}

	count, err := s.userRepository.CountByUUID(spanCtx, uuid)
	if err != nil {
		logger.WithError(err).Error("Failed to check user existence")
		return nil, errcode.ErrInternalServerError
	}
	if count == 0 {
		return nil, errcode.ErrUserNotFound
	}

	detail := new(model.UserDetail)
	creating := false
	if err := s.userDetailRepository.FindByUserUUID(spanCtx, detail, uuid); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithError(err).Error("Failed to find user detail")
			return nil, errcode.ErrInternalServerError
		}
		detail = &model.UserDetail{UserUUID: uuid}
		creating = true
	}

	detail.Extra = model.ExtraDocument{
		Interests: request.Interests,
		Preferences: model.Preferences{
			Theme:      request.Preferences.Theme,
			Language:   request.Preferences.Language,
			Newsletter: request.Preferences.Newsletter,
		},
		SocialMedia: model.SocialMedia{
			Twitter:   request.SocialMedia.Twitter,
			Instagram: request.SocialMedia.Instagram,
			LinkedIn:  request.SocialMedia.LinkedIn,
			Website:   request.SocialMedia.Website,
		},
	}

	if creating {
		err = s.userDetailRepository.Create(spanCtx, detail)
	} else {
		err = s.userDetailRepository.Update(spanCtx, detail)
	}
	if err != nil {
		logger.WithError(err).Error("Failed to persist user detail")
		return nil, errcode.ErrInternalServerError
	}

	if err := s.redisService.Delete(spanCtx, userCacheKey(uuid)); err != nil {
		logger.WithError(err).Warn("Failed to invalidate cached user profile")
	}

	return converter.DetailToResponse(detail), nil
}

// VerifyPermission checks that the user holds the named permission through
// at least one of its roles.
func (s *UserService) VerifyPermission(ctx context.Context, uuid string, permission string) error {
	spanCtx, span := s.tracer.Start(ctx, "UserService.VerifyPermission")
	defer span.End()

	user := new(model.User)
	if err := s.userRepository.FindByUUID(spanCtx, user, uuid); err != nil {
		s.log.WithContext(spanCtx).WithError(err).Warn("Failed to find user by UUID")
		return errcode.ErrUserNotFound
	}

	for _, role := range user.Roles {
		for _, perm := range role.Permissions {
			if perm.Name == permission {
				return nil
			}
		}
	}

	return errcode.ErrPermissionDenied
}

// resolveRoles maps role names to role rows. Every name must exist. The
// result is never nil so an explicit empty list clears assignments when
// handed to ReplaceRoles.
func (s *UserService) resolveRoles(ctx context.Context, names []string) ([]model.Role, error) {
	if len(names) == 0 {
		return []model.Role{}, nil
	}

	roles, err := s.roleRepository.FindByNames(ctx, names)
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Error("Failed to load roles by name")
		return nil, errcode.ErrInternalServerError
	}
	if len(roles) != len(names) {
		return nil, errcode.ErrRoleNotFound
	}

	return roles, nil
}
