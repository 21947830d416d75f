package storage

import (
	"errors"

	"gradeboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDuplicateRoll = errors.New("roll number already exists")
	ErrNotFound      = errors.New("student not found")
)

// CreateStudent inserts a record and fills in its assigned ID.
func (s *Store) CreateStudent(student *models.Student) error {
	if err := s.db.Create(student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRoll
		}
		return err
	}

	s.logger.Debug("Store", "student created", map[string]interface{}{
		"id":   student.ID,
		"roll": student.Roll,
	})
	return nil
}

// UpdateStudent replaces the name, roll and marks of the record with
// the given ID.
func (s *Store) UpdateStudent(student models.Student) error {
	result := s.db.Model(&models.Student{}).
		Where("id = ?", student.ID).
		Select("Name", "Roll", "Marks").
		Updates(student)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRoll
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("Store", "student updated", map[string]interface{}{
		"id": student.ID,
	})
	return nil
}

// DeleteStudent removes the record with the given ID.
func (s *Store) DeleteStudent(id uint) error {
	result := s.db.Delete(&models.Student{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("Store", "student deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}

// ListStudents returns all records ordered by ID, the order the table
// and the visualizer start from.
func (s *Store) ListStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// CountStudents returns the number of stored records.
func (s *Store) CountStudents() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Student{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
