package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	s := New(repo)
	s.newID = func() string { return "u-1" }
	return s, repo
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name        string
		userName    string
		rfid        string
		credits     int64
		prepareMock func(repo *MockRepo)
		expectErr   error
	}{
		{
			name:     "User created",
			userName: " Alice ",
			rfid:     "RFID-1",
			credits:  10,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByRFID(gomock.Any(), "RFID-1").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), &domain.User{ID: "u-1", Name: "Alice", RFIDTag: "RFID-1", Credits: 10}).
					Return(&domain.User{ID: "u-1", Name: "Alice", RFIDTag: "RFID-1", Credits: 10}, nil)
			},
		},
		{
			name:        "Missing name",
			rfid:        "RFID-1",
			prepareMock: func(*MockRepo) {},
			expectErr:   domain.ErrInvalidInput,
		},
		{
			name:        "Missing rfid",
			userName:    "Alice",
			prepareMock: func(*MockRepo) {},
			expectErr:   domain.ErrInvalidInput,
		},
		{
			name:        "Negative credits",
			userName:    "Alice",
			rfid:        "RFID-1",
			credits:     -1,
			prepareMock: func(*MockRepo) {},
			expectErr:   domain.ErrInvalidInput,
		},
		{
			name:     "RFID already registered",
			userName: "Alice",
			rfid:     "RFID-1",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByRFID(gomock.Any(), "RFID-1").Return(&domain.User{ID: "u-0"}, nil)
			},
			expectErr: domain.ErrAlreadyExists,
		},
		{
			name:     "RFID registered concurrently",
			userName: "Alice",
			rfid:     "RFID-1",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByRFID(gomock.Any(), "RFID-1").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrAlreadyExists,
		},
		{
			name:     "Store error",
			userName: "Alice",
			rfid:     "RFID-1",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByRFID(gomock.Any(), "RFID-1").Return(nil, errors.New("timeout"))
			},
			expectErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := NewMock(t)
			tt.prepareMock(repo)

			user, err := s.Create(context.Background(), tt.userName, tt.rfid, tt.credits)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alice", user.Name)
		})
	}
}

func TestService_FindByID(t *testing.T) {
	s, repo := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&domain.User{ID: "u-1"}, nil)
	repo.EXPECT().FindByID(gomock.Any(), "u-2").Return(nil, nil)
	repo.EXPECT().FindByID(gomock.Any(), "u-3").Return(nil, errors.New("timeout"))

	user, err := s.FindByID(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	_, err = s.FindByID(context.Background(), "u-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.FindByID(context.Background(), "u-3")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestService_List(t *testing.T) {
	s, repo := NewMock(t)

	repo.EXPECT().List(gomock.Any()).Return([]domain.User{{ID: "u-1"}, {ID: "u-2"}}, nil)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

	users, err := s.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = s.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestService_AdjustCredits(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		operation   string
		prepareMock func(repo *MockRepo)
		expectErr   error
		shortfall   int64
		credits     int64
	}{
		{
			name:      "Set",
			amount:    20,
			operation: OperationSet,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().SetCredits(gomock.Any(), "u-1", int64(20)).Return(&domain.User{ID: "u-1", Credits: 20}, nil)
			},
			credits: 20,
		},
		{
			name:   "Empty operation means set",
			amount: 7,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().SetCredits(gomock.Any(), "u-1", int64(7)).Return(&domain.User{ID: "u-1", Credits: 7}, nil)
			},
			credits: 7,
		},
		{
			name:      "Add",
			amount:    5,
			operation: OperationAdd,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Credit(gomock.Any(), "u-1", int64(5)).Return(&domain.User{ID: "u-1", Credits: 15}, nil)
			},
			credits: 15,
		},
		{
			name:      "Operation is case insensitive",
			amount:    5,
			operation: "ADD",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Credit(gomock.Any(), "u-1", int64(5)).Return(&domain.User{ID: "u-1", Credits: 15}, nil)
			},
			credits: 15,
		},
		{
			name:      "Mixed case subtract",
			amount:    4,
			operation: "Subtract",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&domain.User{ID: "u-1", Credits: 10}, nil)
				repo.EXPECT().Debit(gomock.Any(), "u-1", int64(4)).Return(&domain.User{ID: "u-1", Credits: 6}, nil)
			},
			credits: 6,
		},
		{
			name:      "Subtract within balance",
			amount:    4,
			operation: OperationSubtract,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&domain.User{ID: "u-1", Credits: 10}, nil)
				repo.EXPECT().Debit(gomock.Any(), "u-1", int64(4)).Return(&domain.User{ID: "u-1", Credits: 6}, nil)
			},
			credits: 6,
		},
		{
			name:      "Subtract below zero",
			amount:    12,
			operation: OperationSubtract,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&domain.User{ID: "u-1", Credits: 10}, nil)
			},
			expectErr: domain.ErrInsufficientFunds,
			shortfall: 2,
		},
		{
			name:      "Subtract loses race",
			amount:    10,
			operation: OperationSubtract,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "u-1").Return(&domain.User{ID: "u-1", Credits: 10}, nil)
				repo.EXPECT().Debit(gomock.Any(), "u-1", int64(10)).Return(nil, nil)
			},
			expectErr: domain.ErrConflict,
		},
		{
			name:        "Negative amount",
			amount:      -1,
			operation:   OperationSet,
			prepareMock: func(*MockRepo) {},
			expectErr:   domain.ErrInvalidInput,
		},
		{
			name:        "Unknown operation",
			amount:      1,
			operation:   "multiply",
			prepareMock: func(*MockRepo) {},
			expectErr:   domain.ErrInvalidInput,
		},
		{
			name:      "Unknown user",
			amount:    1,
			operation: OperationAdd,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Credit(gomock.Any(), "u-1", int64(1)).Return(nil, nil)
			},
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := NewMock(t)
			tt.prepareMock(repo)

			user, err := s.AdjustCredits(context.Background(), "u-1", tt.amount, tt.operation)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				if tt.shortfall > 0 {
					var derr *domain.Error
					require.ErrorAs(t, err, &derr)
					assert.Equal(t, tt.shortfall, derr.Shortfall)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.credits, user.Credits)
		})
	}
}
