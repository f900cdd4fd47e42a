package storage

import (
	"context"

	"github.com/shadowscrew/capeshop/internal/model"
)

// Storage defines the interface for data persistence.
//
// Carts are keyed by an opaque cart key: the web layer uses a per-browser
// cookie value (carts exist before login), the API uses the username.
// Balances and purchases are keyed by username.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)

	// Balance operations. A balance that was never written reads as 0.
	GetBalance(ctx context.Context, username string) (int, error)
	SaveBalance(ctx context.Context, username string, amount int) error

	// Cart operations. A cart that was never written reads as empty.
	GetCart(ctx context.Context, cartKey string) (*model.Cart, error)
	SaveCart(ctx context.Context, cartKey string, cart *model.Cart) error
	DeleteCart(ctx context.Context, cartKey string) error

	// Purchase operations. Purchases that were never written read as empty.
	GetPurchases(ctx context.Context, username string) ([]model.Purchase, error)
	SavePurchases(ctx context.Context, username string, purchases []model.Purchase) error

	// ApplyCheckout persists the outcome of a successful checkout as one
	// write: the new balance, the full purchase list, and the cart removal.
	ApplyCheckout(ctx context.Context, cartKey, username string, balance int, purchases []model.Purchase) error

	// Catalog operations
	GetCatalog(ctx context.Context) ([]model.Cape, error)
	SaveCatalog(ctx context.Context, capes []model.Cape) error
}
