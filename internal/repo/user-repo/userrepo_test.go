package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var columns = []string{"id", "name", "rfid_tag", "credits", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, name, rfid_tag, credits, created_at, updated_at FROM users WHERE id = $1")

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			id:   "u-1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u-1").
					WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "Alice", "RFID-1", int64(5), now, now))
			},
			result: &domain.User{ID: "u-1", Name: "Alice", RFIDTag: "RFID-1", Credits: 5, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "User does not exist",
			id:   "u-2",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u-2").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Malformed id",
			id:   "abc",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("abc").WillReturnError(&pgconn.PgError{Code: "22P02"})
			},
		},
		{
			name: "Database error",
			id:   "u-1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByRFID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE rfid_tag = $1")).WithArgs("RFID-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "Alice", "RFID-1", int64(5), now, now))

	user, err := repo.FindByRFID(context.Background(), "RFID-1")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM users ORDER BY created_at")

	t.Run("Returns users", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(columns).
			AddRow("u-1", "Alice", "RFID-1", int64(5), now, now).
			AddRow("u-2", "Bob", "RFID-2", int64(0), now, now))

		users, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "Bob", users[1].Name)
	})

	t.Run("Empty table", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(columns))

		users, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, users)
		assert.NotNil(t, users)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		users, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, users)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("INSERT INTO users (id, name, rfid_tag, credits) VALUES ($1, $2, $3, $4) RETURNING")
	user := &domain.User{ID: "u-1", Name: "Alice", RFIDTag: "RFID-1", Credits: 10}

	t.Run("Created", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("u-1", "Alice", "RFID-1", int64(10)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "Alice", "RFID-1", int64(10), now, now))

		created, err := repo.Create(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("Insert error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("u-1", "Alice", "RFID-1", int64(10)).
			WillReturnError(errors.New("duplicate key"))

		created, err := repo.Create(context.Background(), user)
		assert.Error(t, err)
		assert.Nil(t, created)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("UPDATE users SET credits = credits - $1, updated_at = now() WHERE id = $2 AND credits >= $1")

	tests := []struct {
		name      string
		amount    int64
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name:   "Balance covers amount",
			amount: 5,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(5), "u-1").
					WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "Alice", "RFID-1", int64(0), now, now))
			},
		},
		{
			name:   "Guard rejects update",
			amount: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(7), "u-1").WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name:   "Database error",
			amount: 5,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(5), "u-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Debit(context.Background(), "u-1", tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, user)
			} else {
				assert.Equal(t, int64(0), user.Credits)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreditAndSet(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SET credits = credits + $1, updated_at = now() WHERE id = $2")).
		WithArgs(int64(3), "u-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "Alice", "RFID-1", int64(8), now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SET credits = $1, updated_at = now() WHERE id = $2")).
		WithArgs(int64(20), "u-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "Alice", "RFID-1", int64(20), now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SET credits = $1, updated_at = now() WHERE id = $2")).
		WithArgs(int64(20), "missing").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.Credit(context.Background(), "u-1", 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(8), user.Credits)

	user, err = repo.SetCredits(context.Background(), "u-1", 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(20), user.Credits)

	user, err = repo.SetCredits(context.Background(), "missing", 20)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}
