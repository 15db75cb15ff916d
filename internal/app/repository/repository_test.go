package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewWithDB(gormDB), mock
}

func TestCountUsers(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	u, err := repo.GetUserByEmail("nobody@example.com")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUserRemovesPredictionsInOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "predictions" WHERE user_id =`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "users" WHERE id =`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteUser(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRiskLevelDistribution(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT risk_level, COUNT\(id\)`).
		WillReturnRows(sqlmock.NewRows([]string{"risk_level", "count"}).
			AddRow("low", 7).
			AddRow("medium", 3).
			AddRow("high", 1))

	dist, err := repo.RiskLevelDistribution()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"low": 7, "medium": 3, "high": 1}, dist)
}

func TestAveragePredictionConfidenceEmptyTable(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT AVG\(confidence_score\)`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	avg, err := repo.AveragePredictionConfidence()
	require.NoError(t, err)
	assert.Zero(t, avg)
}
