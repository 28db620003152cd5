package database

import (
	"identity-service/internal/config/env"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// gormOpen is swapped out by tests to avoid a live PostgreSQL server.
var gormOpen = gorm.Open

// NewDatabase initializes and returns a PostgreSQL database connection.
// All identity tables live in the schema named by database.schema, which
// is applied here as a table prefix.
func NewDatabase(config *env.Config, log *logrus.Logger) *gorm.DB {
	dsn := config.Database.DSN

	idleConnection := config.Database.Pool.Idle
	maxConnection := config.Database.Pool.Max
	maxLifeTimeConnection := config.Database.Pool.Lifetime

	gormConfig := &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             time.Second * 5,
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			LogLevel:                  logger.LogLevel(config.Database.Log.Level),
		}),
	}
	if config.Database.Schema != "" {
		gormConfig.NamingStrategy = schema.NamingStrategy{
			TablePrefix: config.Database.Schema + ".",
		}
	}

	db, err := gormOpen(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.Use(otelgorm.NewPlugin())

	// Get the underlying SQL connection
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to get database instance")
	}

	// Configure connection pooling
	sqlDB.SetMaxIdleConns(idleConnection)
	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLifeTimeConnection) * time.Second)

	log.Info("Database connection established successfully")
	return db
}
