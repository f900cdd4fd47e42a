package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shadowscrew/capeshop/internal/api/middleware"
	"github.com/shadowscrew/capeshop/internal/api/request"
	"github.com/shadowscrew/capeshop/internal/api/response"
	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/services/catalog"
	"github.com/shadowscrew/capeshop/internal/services/commerce"
)

// ShopHandler handles catalog, cart, checkout and inventory endpoints.
// API carts are keyed by username, so the same cart follows an account
// across clients.
type ShopHandler struct {
	catalogService  *catalog.Service
	commerceService *commerce.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(catalogService *catalog.Service, commerceService *commerce.Service) *ShopHandler {
	return &ShopHandler{
		catalogService:  catalogService,
		commerceService: commerceService,
	}
}

// Catalog handles GET /api/v1/capes
func (h *ShopHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if !h.catalogService.IsLoaded() {
		WriteError(w, model.ErrCatalogNotLoaded)
		return
	}
	response.JSON(w, http.StatusOK, response.CatalogFromModel(h.catalogService.Capes()))
}

// GetCart handles GET /api/v1/cart
func (h *ShopHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	cart, err := h.commerceService.Cart(r.Context(), user.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CartFromModel(cart))
}

// AddToCart handles POST /api/v1/cart
func (h *ShopHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.AddCapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cart, _, err := h.commerceService.AddToCart(r.Context(), user.Username, req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CartFromModel(cart))
}

// ClearCart handles DELETE /api/v1/cart
func (h *ShopHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	if err := h.commerceService.ClearCart(r.Context(), user.Username); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Checkout handles POST /api/v1/cart/checkout
func (h *ShopHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	receipt, err := h.commerceService.Checkout(r.Context(), user.Username, user.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReceiptFromModel(receipt))
}

// Inventory handles GET /api/v1/inventory
func (h *ShopHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	purchases, err := h.commerceService.Inventory(r.Context(), user.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.InventoryFromModel(purchases))
}

// Balance handles GET /api/v1/balance
func (h *ShopHandler) Balance(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	balance, err := h.commerceService.Balance(r.Context(), user.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Balance{Balance: balance})
}
