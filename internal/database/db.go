package database

import (
	"context"
	"fmt"
	"time"

	"github.com/openhire/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("successfully connected to PostgreSQL")

	// Migration: this creates the tables in Postgres automatically
	if err := db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.EmployerUser{},
		&models.Category{},
		&models.Skill{},
		&models.JobBenefit{},
		&models.Job{},
		&models.JobDescription{},
		&models.JobSeeker{},
		&models.SavedJob{},
		&models.Application{},
		&models.Resume{},
		&models.AccessToken{},
	); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Info("migrations completed")

	return db, nil
}
