package commerce

import (
	"context"
	"log/slog"

	"github.com/shadowscrew/capeshop/internal/dependencies/clock"
	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/services/catalog"
	"github.com/shadowscrew/capeshop/internal/storage"
)

// Service implements the shop's commerce operations: cart management,
// checkout, inventory, and balance lookup.
//
// Cart operations take a cartKey rather than a username because carts exist
// before login (the web layer keys them by a browser cookie). Checkout is the
// point where a cart meets an account.
type Service struct {
	storage storage.Storage
	catalog *catalog.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new commerce Service
func New(store storage.Storage, cat *catalog.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		catalog: cat,
		clock:   clk,
		logger:  logger,
	}
}

// Receipt summarizes a successful checkout
type Receipt struct {
	Total   int
	Balance int // balance after the purchase
	Items   []model.Purchase
}

// AddToCart appends the catalog cape at index to the cart and persists it.
// There are no quantity limits and no stock pool; duplicates are fine.
func (s *Service) AddToCart(ctx context.Context, cartKey string, index int) (*model.Cart, model.Cape, error) {
	cape, err := s.catalog.Cape(index)
	if err != nil {
		return nil, model.Cape{}, err
	}

	cart, err := s.storage.GetCart(ctx, cartKey)
	if err != nil {
		return nil, model.Cape{}, err
	}

	cart.Add(cape)

	if err := s.storage.SaveCart(ctx, cartKey, cart); err != nil {
		return nil, model.Cape{}, err
	}

	return cart, cape, nil
}

// Cart returns the persisted cart for the given key (empty if never written)
func (s *Service) Cart(ctx context.Context, cartKey string) (*model.Cart, error) {
	return s.storage.GetCart(ctx, cartKey)
}

// ClearCart empties the cart
func (s *Service) ClearCart(ctx context.Context, cartKey string) error {
	return s.storage.DeleteCart(ctx, cartKey)
}

// Checkout buys the whole cart for the given account.
//
// The one real invariant of the shop: the balance never goes negative. When
// the cart total exceeds the balance, the returned InsufficientFundsError
// carries the exact shortfall and no state changes; the cart is retained.
// On success the balance drops by exactly the total, every cart item is
// stamped with the current time and appended to the account's purchases, and
// the cart empties. All three writes land in a single storage call.
func (s *Service) Checkout(ctx context.Context, cartKey, username string) (*Receipt, error) {
	cart, err := s.storage.GetCart(ctx, cartKey)
	if err != nil {
		return nil, err
	}

	total := cart.Total()

	balance, err := s.storage.GetBalance(ctx, username)
	if err != nil {
		return nil, err
	}

	if balance < total {
		return nil, &model.InsufficientFundsError{Balance: balance, Total: total}
	}

	purchases, err := s.storage.GetPurchases(ctx, username)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	bought := make([]model.Purchase, 0, cart.Len())
	for _, cape := range cart.Items {
		bought = append(bought, model.Purchase{Cape: cape, BoughtAt: now})
	}
	purchases = append(purchases, bought...)

	newBalance := balance - total
	if err := s.storage.ApplyCheckout(ctx, cartKey, username, newBalance, purchases); err != nil {
		return nil, err
	}

	s.logger.Info("checkout completed",
		slog.String("username", username),
		slog.Int("total", total),
		slog.Int("items", len(bought)),
		slog.Int("balance", newBalance),
	)

	return &Receipt{
		Total:   total,
		Balance: newBalance,
		Items:   bought,
	}, nil
}

// Inventory returns the account's purchases in buy order
func (s *Service) Inventory(ctx context.Context, username string) ([]model.Purchase, error) {
	return s.storage.GetPurchases(ctx, username)
}

// Balance returns the account's current balance (0 if never written)
func (s *Service) Balance(ctx context.Context, username string) (int, error) {
	return s.storage.GetBalance(ctx, username)
}
