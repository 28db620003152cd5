package main

import (
	app "identity-service/internal"
	"identity-service/internal/config/database"
	"identity-service/internal/config/env"
	"identity-service/internal/config/logger"
	"identity-service/internal/config/monitor"
	"identity-service/internal/config/redis"
	"identity-service/internal/config/validation"
	"identity-service/internal/config/web"
)

func main() {
	config := env.NewConfig()
	log := logger.NewLogger(config)
	web := web.NewFiber(log, config)
	redis := redis.NewRedis(log, config)
	db := database.NewDatabase(config, log)
	monitoring := monitor.NewMonitoring(log, config)
	validation := validation.NewValidation()
	defer monitoring.Shutdown()

	server := app.NewApp(log, config, db, web, validation, redis)
	server.Run()
}
