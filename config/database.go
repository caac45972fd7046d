package config

import (
	"hrms-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens the MySQL connection and migrates the schema.
// The handle is returned to the caller instead of being kept as a
// package global so every component receives it at construction.
func ConnectDB(dsn string) (*gorm.DB, error) {
	// TranslateError lets callers detect unique-index violations as
	// gorm.ErrDuplicatedKey (duplicate email, duplicate same-day attendance).
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto Migration: create tables from the structs in internal/model
	if err := db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.LeaveType{},
		&model.LeaveRequest{},
		&model.ExpenseCategory{},
		&model.ExpenseRequest{},
		&model.AttendanceLog{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
