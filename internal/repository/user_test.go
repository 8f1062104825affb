package repository

import (
	"context"
	"errors"
	"testing"

	"viewtube/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name         string
		mockBehavior func()
		expectUser   bool
		expectErr    bool
	}{
		{
			name: "found",
			mockBehavior: func() {
				mock.ExpectQuery(`SELECT (.+) FROM "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
						AddRow(1, "alice", "alice@example.com"))
			},
			expectUser: true,
		},
		{
			name: "missing user yields nil, nil",
			mockBehavior: func() {
				mock.ExpectQuery(`SELECT (.+) FROM "users"`).
					WillReturnError(gorm.ErrRecordNotFound)
			},
		},
		{
			name: "storage fault is surfaced",
			mockBehavior: func() {
				mock.ExpectQuery(`SELECT (.+) FROM "users"`).
					WillReturnError(errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()

			user, err := repo.GetByID(ctx, 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.expectUser {
				require.NotNil(t, user)
				assert.Equal(t, "alice", user.Username)
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("missing@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	user, err := repo.GetByEmail(context.Background(), "missing@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}
