package memory

import (
	"context"
	"sync"

	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	accounts      map[string]*model.Account // keyed by username
	balances      map[string]int
	carts         map[string][]model.Cape
	purchases     map[string][]model.Purchase
	catalog       []model.Cape
	catalogLoaded bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:     make(map[model.UserID]*model.User),
		accounts:  make(map[string]*model.Account),
		balances:  make(map[string]int),
		carts:     make(map[string][]model.Cape),
		purchases: make(map[string][]model.Purchase),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Username] = account
	return nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

// Balance operations

func (s *Storage) GetBalance(ctx context.Context, username string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[username], nil
}

func (s *Storage) SaveBalance(ctx context.Context, username string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[username] = amount
	return nil
}

// Cart operations

func (s *Storage) GetCart(ctx context.Context, cartKey string) (*model.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.carts[cartKey]
	if !ok {
		return model.NewCart(), nil
	}
	cart := &model.Cart{Items: make([]model.Cape, len(items))}
	copy(cart.Items, items)
	return cart, nil
}

func (s *Storage) SaveCart(ctx context.Context, cartKey string, cart *model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.Cape, len(cart.Items))
	copy(items, cart.Items)
	s.carts[cartKey] = items
	return nil
}

func (s *Storage) DeleteCart(ctx context.Context, cartKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartKey)
	return nil
}

// Purchase operations

func (s *Storage) GetPurchases(ctx context.Context, username string) ([]model.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Purchase, len(s.purchases[username]))
	copy(result, s.purchases[username])
	return result, nil
}

func (s *Storage) SavePurchases(ctx context.Context, username string, purchases []model.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.Purchase, len(purchases))
	copy(stored, purchases)
	s.purchases[username] = stored
	return nil
}

func (s *Storage) ApplyCheckout(ctx context.Context, cartKey, username string, balance int, purchases []model.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]model.Purchase, len(purchases))
	copy(stored, purchases)
	s.balances[username] = balance
	s.purchases[username] = stored
	delete(s.carts, cartKey)
	return nil
}

// Catalog operations

func (s *Storage) GetCatalog(ctx context.Context) ([]model.Cape, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.catalogLoaded {
		return nil, model.ErrCatalogNotLoaded
	}
	result := make([]model.Cape, len(s.catalog))
	copy(result, s.catalog)
	return result, nil
}

func (s *Storage) SaveCatalog(ctx context.Context, capes []model.Cape) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = make([]model.Cape, len(capes))
	copy(s.catalog, capes)
	s.catalogLoaded = true
	return nil
}
