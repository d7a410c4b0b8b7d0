package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ashgrove-backend/internal/domain/content"
	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/domain/user"
)

// OpenGorm connects to Postgres using a DATABASE_URL style DSN.
func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(postgres.Open(dsn))
}

// OpenGormWithDialector is the seam used by tests to substitute the
// production dialector.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&enquiry.Customer{},
		&enquiry.Note{},
		&enquiry.Submission{},
		&content.Page{},
		&content.GalleryItem{},
		&content.FAQ{},
		&content.Redirect{},
		&user.User{},
	)
}
