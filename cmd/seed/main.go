package main

import (
	"context"

	"identity-service/db/seeder"
	"identity-service/internal/config/database"
	"identity-service/internal/config/env"
	"identity-service/internal/config/logger"
	"identity-service/internal/config/redis"
	"identity-service/internal/config/validation"
	"identity-service/internal/repository"
	"identity-service/internal/service"
)

func main() {
	config := env.NewConfig()
	log := logger.NewLogger(config)
	db := database.NewDatabase(config, log)
	rdb := redis.NewRedis(log, config)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permRepo := repository.NewPermissionRepository(db)
	detailRepo := repository.NewUserDetailRepository(db)
	redisService := service.NewRedisService(rdb, log)
	userService := service.NewUserService(db, userRepo, roleRepo, detailRepo, redisService, validation.NewValidation(), log)

	s := seeder.NewSeeder(db, userService, userRepo, roleRepo, permRepo, detailRepo, log)
	if err := s.Run(context.Background()); err != nil {
		log.WithError(err).Fatal("Seeding failed")
	}
	log.Info("Seeding completed")
}
