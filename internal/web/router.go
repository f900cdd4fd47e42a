package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shadowscrew/capeshop/internal/services/auth"
	"github.com/shadowscrew/capeshop/internal/services/catalog"
	"github.com/shadowscrew/capeshop/internal/services/commerce"
	"github.com/shadowscrew/capeshop/internal/web/handler"
	"github.com/shadowscrew/capeshop/internal/web/middleware"
)

// RouterConfig holds the dependencies for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	CatalogService    *catalog.Service
	CommerceService   *commerce.Service
	StaticDir         string
	DiscordConfigured bool
}

// NewRouter creates the web interface router
func NewRouter(cfg RouterConfig) *mux.Router {
	shopHandler := handler.NewShopHandler(
		cfg.Logger, cfg.CatalogService, cfg.CommerceService, cfg.DiscordConfigured)
	authHandler := handler.NewAuthHandler(cfg.Logger, cfg.AuthService)

	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Flash())
	r.Use(middleware.CartKey())
	r.Use(middleware.OptionalAuth(cfg.AuthService))

	r.HandleFunc("/", shopHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	r.HandleFunc("/cart", shopHandler.AddToCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/clear", shopHandler.ClearCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/checkout", shopHandler.Checkout).Methods(http.MethodPost)
	r.HandleFunc("/inventory", shopHandler.Inventory).Methods(http.MethodPost)

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}
