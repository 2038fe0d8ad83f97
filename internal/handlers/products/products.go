package products

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/dto"
	"github.com/GlebRadaev/vending/internal/handlers/apierr"
	"github.com/GlebRadaev/vending/internal/service/productservice"
	"github.com/GlebRadaev/vending/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=products.go -destination=mock_products.go -package=products

type Service interface {
	Create(ctx context.Context, name string, price int64, slot int, stock int64) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, upd productservice.Update) (*domain.Product, error)
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct godoc
//
//	@Summary		Place a product in a slot
//	@Description	Create a product in a free slot (1 or 2) with a positive price.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProductRequestDTO	true	"Product payload"
//	@Success		201		{object}	dto.ProductResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid product"
//	@Failure		409		{object}	utils.Response	"Slot already occupied"
//	@Failure		503		{object}	utils.Response	"Store unavailable"
//	@Router			/api/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), req.Name, req.Price, req.SlotNumber, req.Stock)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewProductResponse(product))
}

// GetProducts godoc
//
//	@Summary	List products by slot
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}		dto.ProductResponseDTO
//	@Failure	503	{object}	utils.Response	"Store unavailable"
//	@Router		/api/products [get]
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	response := make([]dto.ProductResponseDTO, 0, len(products))
	for i := range products {
		response = append(response, dto.NewProductResponse(&products[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetProduct godoc
//
//	@Summary	Get a product
//	@Tags		Products
//	@Produce	json
//	@Param		productID	path		string	true	"Product ID"
//	@Success	200			{object}	dto.ProductResponseDTO
//	@Failure	404			{object}	utils.Response	"Product not found"
//	@Router		/api/products/{productID} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.FindByID(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductResponse(product))
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Change name, price or stock. Omitted fields are kept.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		string						true	"Product ID"
//	@Param			request		body		dto.UpdateProductRequestDTO	true	"Fields to change"
//	@Success		200			{object}	dto.ProductResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid product"
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Router			/api/products/{productID} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == nil && req.Price == nil && req.Stock == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	product, err := h.productService.Update(r.Context(), chi.URLParam(r, "productID"), productservice.Update{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductResponse(product))
}
