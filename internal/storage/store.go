package storage

import (
	"fmt"

	"gradeboard/internal/logger"
	"gradeboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store wraps the sqlite database holding student records. The file is
// created and migrated on open.
type Store struct {
	db     *gorm.DB
	logger logger.Logger
}

func Open(path string, log logger.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}

	if err := db.AutoMigrate(&models.Student{}); err != nil {
		return nil, fmt.Errorf("migrate students table: %w", err)
	}

	log.Info("Store", "database opened", map[string]interface{}{
		"path": path,
	})

	return &Store{db: db, logger: log}, nil
}

// Shutdown closes the underlying database connection.
func (s *Store) Shutdown() {
	sqlDB, err := s.db.DB()
	if err != nil {
		s.logger.Error("Store", err, nil)
		return
	}

	if err := sqlDB.Close(); err != nil {
		s.logger.Error("Store", err, nil)
		return
	}

	s.logger.Info("Store", "database closed", nil)
}
