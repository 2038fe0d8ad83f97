package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManager_Begin(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(mock pgxmock.PgxPoolIface)
		fn          func(conn *Conn) TransactionalFn
		expectErr   bool
	}{
		{
			name: "Commit on success",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
					WithArgs("o-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, "DELETE FROM orders WHERE id = $1", "o-1")
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectRollback()
			},
			fn: func(*Conn) TransactionalFn {
				return func(context.Context) error {
					return errors.New("boom")
				}
			},
			expectErr: true,
		},
		{
			name: "Begin fails",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).WillReturnError(errors.New("conn refused"))
			},
			fn: func(*Conn) TransactionalFn {
				return func(context.Context) error {
					t.Fatal("fn must not run")
					return nil
				}
			},
			expectErr: true,
		},
		{
			name: "Commit fails",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectCommit().WillReturnError(errors.New("commit failed"))
			},
			fn: func(*Conn) TransactionalFn {
				return func(context.Context) error { return nil }
			},
			expectErr: true,
		},
		{
			name: "Nested call joins outer transaction",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareMock(mock)
			manager := NewTXManager(mock)
			conn := New(mock)

			fn := tt.fn(conn)
			if fn == nil {
				fn = func(ctx context.Context) error {
					return manager.Begin(ctx, func(ctx context.Context) error {
						assert.NotNil(t, txFromContext(ctx))
						return nil
					})
				}
			}

			err = manager.Begin(context.Background(), fn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_BeginWithMockBeginner(t *testing.T) {
	ctrl := gomock.NewController(t)
	beginner := NewMockBeginner(ctrl)
	beginner.EXPECT().BeginTx(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool closed"))

	err := NewTXManager(beginner).Begin(context.Background(), func(context.Context) error { return nil })
	assert.ErrorContains(t, err, "pool closed")
}

func TestConn_WithoutTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = 0")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	tag, err := New(mock).Exec(context.Background(), "UPDATE products SET stock = 0")
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(errors.Join(errors.New("insert"), &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestIsInvalidText(t *testing.T) {
	assert.True(t, IsInvalidText(&pgconn.PgError{Code: "22P02"}))
	assert.True(t, IsInvalidText(fmt.Errorf("find user: %w", &pgconn.PgError{Code: "22P02"})))
	assert.False(t, IsInvalidText(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsInvalidText(errors.New("other")))
}
