package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/vending/docs"
	"github.com/GlebRadaev/vending/internal/handlers/health"
	ordershandlers "github.com/GlebRadaev/vending/internal/handlers/orders"
	productshandlers "github.com/GlebRadaev/vending/internal/handlers/products"
	usershandlers "github.com/GlebRadaev/vending/internal/handlers/users"
	"github.com/GlebRadaev/vending/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateCredits(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProducts(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetTodaysOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrderStatus(w http.ResponseWriter, r *http.Request)
	GetOrdersByUser(w http.ResponseWriter, r *http.Request)
	GetOrdersByProduct(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler    UserHandler
	ProductHandler ProductHandler
	OrderHandler   OrderHandler
	HealthHandler  HealthHandler
}

func New(s *service.Services, db health.Pinger) *Handlers {
	return &Handlers{
		UserHandler:    usershandlers.New(s.UserService),
		ProductHandler: productshandlers.New(s.ProductService),
		OrderHandler:   ordershandlers.New(s.OrderService, s.ReportService),
		HealthHandler:  health.New(db),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", h.HealthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.UserHandler.CreateUser)
			r.Get("/", h.UserHandler.GetUsers)
			r.Get("/{userID}", h.UserHandler.GetUser)
			r.Put("/{userID}", h.UserHandler.UpdateCredits)
			r.Put("/{userID}/credits", h.UserHandler.UpdateCredits)
		})
		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.ProductHandler.CreateProduct)
			r.Get("/", h.ProductHandler.GetProducts)
			r.Get("/{productID}", h.ProductHandler.GetProduct)
			r.Put("/{productID}", h.ProductHandler.UpdateProduct)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.GetOrders)
			r.Get("/today", h.OrderHandler.GetTodaysOrders)
			r.Get("/user/{userID}", h.OrderHandler.GetOrdersByUser)
			r.Get("/product/{productID}", h.OrderHandler.GetOrdersByProduct)
			r.Get("/{orderID}", h.OrderHandler.GetOrder)
			r.Patch("/{orderID}/status", h.OrderHandler.UpdateOrderStatus)
			r.Delete("/{orderID}", h.OrderHandler.DeleteOrder)
		})
	})

	return r
}
