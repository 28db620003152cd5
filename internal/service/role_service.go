package service

import (
	"context"
	"identity-service/internal/dto"
	"identity-service/internal/dto/converter"
	"identity-service/internal/repository"
	"identity-service/internal/utils/errcode"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const roleListCacheKey = "roles:all"

type RoleService struct {
	roleRepository *repository.RoleRepository
	redisService   *RedisService
	log            *logrus.Logger
	tracer         trace.Tracer
}

func NewRoleService(roleRepository *repository.RoleRepository, redisService *RedisService, log *logrus.Logger) *RoleService {
	return &RoleService{roleRepository, redisService, log, otel.Tracer("RoleService")}
}

// List returns every role with its permissions as a ready-to-send JSON
// document, served from Redis when cached. Roles only change when the seeder
// runs, so a short TTL is enough to keep the listing fresh.
func (s *RoleService) List(ctx context.Context) (string, error) {
	spanCtx, span := s.tracer.Start(ctx, "RoleService.List")
	defer span.End()

	logger := s.log.WithContext(spanCtx)

	cached, found := s.redisService.Get(spanCtx, roleListCacheKey)
	if found {
		logger.Info("Role listing retrieved from Redis cache")
		return cached, nil
	}

	roles, err := s.roleRepository.FindAllWithPermissions(spanCtx)
	if err != nil {
		logger.WithError(err).Error("Failed to load roles")
		return "", errcode.ErrInternalServerError
	}

	responses := make([]*dto.RoleResponse, len(roles))
	for i := range roles {
		responses[i] = converter.RoleToResponse(&roles[i])
	}

	result, err := s.redisService.Set(spanCtx, roleListCacheKey, dto.WebResponse[[]*dto.RoleResponse]{
		Data: responses,
	}, 10*time.Minute)
	if err != nil {
		logger.WithError(err).Warn("Failed to save role listing to Redis")
		if result == "" {
			return "", errcode.ErrInternalServerError
		}
	}

	return result, nil
}
