package repo

import (
	"testing"

	"github.com/GlebRadaev/vending/internal/pg"
	orderrepo "github.com/GlebRadaev/vending/internal/repo/order-repo"
	productrepo "github.com/GlebRadaev/vending/internal/repo/product-repo"
	userrepo "github.com/GlebRadaev/vending/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(pg.New(mockDB), mockTxManager)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ProductRepo)
	assert.NotNil(t, repo.OrderRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &productrepo.Repository{}, repo.ProductRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
