package transport

import (
	"net/http"

	"bazario-be/internal/product"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    product.Category `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	ImageURL    *string          `json:"image_url"`
}

type updateProductRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Category    *product.Category `json:"category"`
	Price       *decimal.Decimal  `json:"price"`
	ImageURL    *string           `json:"image_url"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var category *product.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		c := product.Category(raw)
		category = &c
	}

	products, err := h.ProductSvc.ListActive(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProductSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) ListMyProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductSvc.ListMine(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	p, err := h.ProductSvc.Create(r.Context(), product.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	p, err := h.ProductSvc.Update(r.Context(), chi.URLParam(r, "id"), product.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.ProductSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "product removed"})
}
