package models

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrMissingFields = errors.New("name, roll and marks are all required")
	ErrInvalidMarks  = errors.New("marks must be a non-negative integer")
)

// Student is a single record in the students table. Roll numbers are
// unique across the table; ID is assigned by the database.
type Student struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Roll  string `gorm:"not null;uniqueIndex"`
	Marks int    `gorm:"not null"`
}

// NewStudent validates raw form input and builds a Student. Fields are
// trimmed; marks must parse as a non-negative integer.
func NewStudent(name, roll, marks string) (Student, error) {
	name = strings.TrimSpace(name)
	roll = strings.TrimSpace(roll)
	marks = strings.TrimSpace(marks)

	if name == "" || roll == "" || marks == "" {
		return Student{}, ErrMissingFields
	}

	value, err := strconv.Atoi(marks)
	if err != nil || value < 0 {
		return Student{}, ErrInvalidMarks
	}

	return Student{Name: name, Roll: roll, Marks: value}, nil
}
