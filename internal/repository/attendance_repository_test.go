package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"hrms-backend/internal/model"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return db, mock
}

func attendanceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "action", "timestamp", "location", "date", "created_at"})
}

func TestAttendanceCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `attendance_logs`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(&model.AttendanceLog{
		ID:        "log-1",
		UserID:    "user-1",
		Action:    model.ActionCheckIn,
		Timestamp: time.Now().UTC(),
		Location:  "office",
		Date:      "2026-08-31",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceCreateTranslatesDuplicateKey(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `attendance_logs`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	err := repo.Create(&model.AttendanceLog{
		ID:     "log-1",
		UserID: "user-1",
		Action: model.ActionCheckIn,
		Date:   "2026-08-31",
	})

	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserActionDate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAttendanceRepository(db)

	checkedIn := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `attendance_logs` WHERE user_id = (.+) AND action = (.+) AND date = (.+)").
		WillReturnRows(attendanceRows().
			AddRow("log-1", "user-1", model.ActionCheckIn, checkedIn, "office", "2026-08-31", checkedIn))

	log, err := repo.FindByUserActionDate("user-1", model.ActionCheckIn, "2026-08-31")

	require.NoError(t, err)
	assert.Equal(t, "log-1", log.ID)
	assert.Equal(t, model.ActionCheckIn, log.Action)
	assert.Equal(t, "2026-08-31", log.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserActionDateNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `attendance_logs`").
		WillReturnRows(attendanceRows())

	log, err := repo.FindByUserActionDate("user-1", model.ActionCheckOut, "2026-08-31")

	assert.Nil(t, log)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserIDOrdersByTimestamp(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAttendanceRepository(db)

	morning := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `attendance_logs` WHERE user_id = (.+) ORDER BY timestamp desc").
		WithArgs("user-1").
		WillReturnRows(attendanceRows().
			AddRow("log-2", "user-1", model.ActionCheckOut, evening, "office", "2026-08-31", evening).
			AddRow("log-1", "user-1", model.ActionCheckIn, morning, "office", "2026-08-31", morning))

	logs, err := repo.GetByUserID("user-1")

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, model.ActionCheckOut, logs[0].Action)
	assert.Equal(t, model.ActionCheckIn, logs[1].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllEmpty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `attendance_logs` ORDER BY timestamp desc").
		WillReturnRows(attendanceRows())

	logs, err := repo.GetAll()

	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
