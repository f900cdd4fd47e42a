package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shadowscrew/capeshop/internal/api/handler"
	"github.com/shadowscrew/capeshop/internal/api/middleware"
	"github.com/shadowscrew/capeshop/internal/services/auth"
	"github.com/shadowscrew/capeshop/internal/services/catalog"
	"github.com/shadowscrew/capeshop/internal/services/commerce"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	CatalogService  *catalog.Service
	CommerceService *commerce.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AuthService)
	shopHandler := handler.NewShopHandler(cfg.CatalogService, cfg.CommerceService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	api.HandleFunc("/accounts/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/accounts/login", accountHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	accounts := api.PathPrefix("/accounts").Subrouter()
	accounts.Use(authMiddleware)
	accounts.HandleFunc("/logout", accountHandler.Logout).Methods(http.MethodPost)
	accounts.HandleFunc("/me", accountHandler.GetMe).Methods(http.MethodGet)

	// Catalog is public
	api.HandleFunc("/capes", shopHandler.Catalog).Methods(http.MethodGet)

	// Cart, checkout, balance and inventory require an account
	cart := api.PathPrefix("/cart").Subrouter()
	cart.Use(authMiddleware)
	cart.HandleFunc("", shopHandler.GetCart).Methods(http.MethodGet)
	cart.HandleFunc("", shopHandler.AddToCart).Methods(http.MethodPost)
	cart.HandleFunc("", shopHandler.ClearCart).Methods(http.MethodDelete)
	cart.HandleFunc("/checkout", shopHandler.Checkout).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/balance", shopHandler.Balance).Methods(http.MethodGet)
	protected.HandleFunc("/inventory", shopHandler.Inventory).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
