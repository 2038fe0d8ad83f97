package service

import (
	"github.com/GlebRadaev/vending/internal/config"
	"github.com/GlebRadaev/vending/internal/handlers/orders"
	"github.com/GlebRadaev/vending/internal/handlers/products"
	"github.com/GlebRadaev/vending/internal/handlers/users"
	"github.com/GlebRadaev/vending/internal/pg"
	"github.com/GlebRadaev/vending/internal/repo"
	"github.com/GlebRadaev/vending/internal/service/productservice"
	"github.com/GlebRadaev/vending/internal/service/reportservice"
	"github.com/GlebRadaev/vending/internal/service/userservice"
	"github.com/GlebRadaev/vending/internal/service/vendingservice"
)

type Services struct {
	UserService    users.Service
	ProductService products.Service
	OrderService   orders.Service
	ReportService  orders.ReportService
}

func New(
	cfg *config.Config,
	repo *repo.Repositories,
	txManager pg.TXManager,
	cache vendingservice.OrderCache,
	publisher vendingservice.Publisher,
) *Services {
	userService := userservice.New(repo.UserRepo)
	productService := productservice.New(repo.ProductRepo)
	orderService := vendingservice.New(cfg, repo.UserRepo, repo.ProductRepo, repo.OrderRepo, txManager, cache, publisher)
	reportService := reportservice.New(repo.OrderRepo, repo.UserRepo, repo.ProductRepo)

	return &Services{
		UserService:    userService,
		ProductService: productService,
		OrderService:   orderService,
		ReportService:  reportService,
	}
}
