package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/services/catalog"
	"github.com/shadowscrew/capeshop/internal/services/commerce"
	"github.com/shadowscrew/capeshop/internal/web/middleware"
	"github.com/shadowscrew/capeshop/internal/web/templates"
)

// ShopHandler serves the storefront: catalog, cart, checkout and inventory
type ShopHandler struct {
	logger            *slog.Logger
	catalogService    *catalog.Service
	commerceService   *commerce.Service
	discordConfigured bool
}

func NewShopHandler(
	logger *slog.Logger,
	catalogService *catalog.Service,
	commerceService *commerce.Service,
	discordConfigured bool,
) *ShopHandler {
	return &ShopHandler{
		logger:            logger,
		catalogService:    catalogService,
		commerceService:   commerceService,
		discordConfigured: discordConfigured,
	}
}

// Home renders the storefront page
func (h *ShopHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)
	cartKey := middleware.GetCartKey(ctx)

	cart, err := h.commerceService.Cart(ctx, cartKey)
	if err != nil {
		h.logger.Error("failed to load cart", "error", err)
		cart = model.NewCart()
	}

	var balance int
	if user != nil {
		balance, err = h.commerceService.Balance(ctx, user.Username)
		if err != nil {
			h.logger.Error("failed to load balance", "error", err, "username", user.Username)
		}
	}

	data := templates.HomeData{
		PageData: templates.PageData{
			Title: "Boutique",
			User:  user,
			Flash: middleware.GetFlash(ctx),
		},
		Capes:             h.catalogService.Capes(),
		Cart:              cart,
		Balance:           balance,
		DiscordConfigured: h.discordConfigured,
	}

	if err := templates.Home(w, data); err != nil {
		h.logger.Error("failed to render home page", "error", err)
	}
}

// AddToCart adds the selected cape to the browser's cart
func (h *ShopHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cartKey := middleware.GetCartKey(ctx)

	index, err := strconv.Atoi(r.FormValue("cape"))
	if err != nil {
		middleware.SetFlash(w, "error", "Cape introuvable.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, cape, err := h.commerceService.AddToCart(ctx, cartKey, index)
	if err != nil {
		if errors.Is(err, model.ErrCapeNotFound) {
			middleware.SetFlash(w, "error", "Cape introuvable.")
		} else {
			h.logger.Error("failed to add to cart", "error", err)
			middleware.SetFlash(w, "error", "Une erreur est survenue.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", fmt.Sprintf("%s ajouté au panier.", cape.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ClearCart empties the browser's cart
func (h *ShopHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cartKey := middleware.GetCartKey(ctx)

	if err := h.commerceService.ClearCart(ctx, cartKey); err != nil {
		h.logger.Error("failed to clear cart", "error", err)
		middleware.SetFlash(w, "error", "Une erreur est survenue.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "info", "Panier vidé.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Checkout purchases the cart contents against the user's balance
func (h *ShopHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	if user == nil {
		middleware.SetFlash(w, "error", "Connecte-toi pour acheter.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	cartKey := middleware.GetCartKey(ctx)

	_, err := h.commerceService.Checkout(ctx, cartKey, user.Username)
	if err != nil {
		var ife *model.InsufficientFundsError
		if errors.As(err, &ife) {
			middleware.SetFlash(w, "error",
				fmt.Sprintf("Solde insuffisant, il manque %d ¥.", ife.Shortfall()))
		} else {
			h.logger.Error("checkout failed", "error", err, "username", user.Username)
			middleware.SetFlash(w, "error", "Une erreur est survenue.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success",
		"Achat réussi ! Tes capes sont disponibles dans ton inventaire.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Inventory flashes the names of the user's purchased capes
func (h *ShopHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)

	if user == nil {
		middleware.SetFlash(w, "error", "Connecte-toi pour voir ton inventaire.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	purchases, err := h.commerceService.Inventory(ctx, user.Username)
	if err != nil {
		h.logger.Error("failed to load inventory", "error", err, "username", user.Username)
		middleware.SetFlash(w, "error", "Une erreur est survenue.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if len(purchases) == 0 {
		middleware.SetFlash(w, "info", "Inventaire : vide")
	} else {
		names := make([]string, len(purchases))
		for i, p := range purchases {
			names[i] = p.Name
		}
		middleware.SetFlash(w, "info", "Inventaire : "+strings.Join(names, ", "))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
