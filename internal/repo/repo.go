package repo

import (
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/GlebRadaev/vending/internal/reconcile"
	orderrepo "github.com/GlebRadaev/vending/internal/repo/order-repo"
	productrepo "github.com/GlebRadaev/vending/internal/repo/product-repo"
	userrepo "github.com/GlebRadaev/vending/internal/repo/user-repo"
	"github.com/GlebRadaev/vending/internal/service/productservice"
	"github.com/GlebRadaev/vending/internal/service/reportservice"
	"github.com/GlebRadaev/vending/internal/service/userservice"
	"github.com/GlebRadaev/vending/internal/service/vendingservice"
)

type UserRepo interface {
	userservice.Repo
}

type ProductRepo interface {
	productservice.Repo
	vendingservice.ProductRepo
}

type OrderRepo interface {
	vendingservice.OrderRepo
	reportservice.OrderRepo
	reconcile.OrderRepo
}

type Repositories struct {
	UserRepo    UserRepo
	ProductRepo ProductRepo
	OrderRepo   OrderRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	productRepo := productrepo.New(conn)
	orderRepo := orderrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}
}
