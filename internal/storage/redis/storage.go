package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	// Accounts persist indefinitely
	return s.client.Set(ctx, accountKey(account.Username), data, 0).Err()
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Balance operations

func (s *Storage) GetBalance(ctx context.Context, username string) (int, error) {
	val, err := s.client.Get(ctx, balanceKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	amount, err := strconv.Atoi(val)
	if err != nil {
		// Corrupt value reads as absent
		return 0, nil
	}
	return amount, nil
}

func (s *Storage) SaveBalance(ctx context.Context, username string, amount int) error {
	return s.client.Set(ctx, balanceKey(username), strconv.Itoa(amount), 0).Err()
}

// Cart operations

func (s *Storage) GetCart(ctx context.Context, key string) (*model.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewCart(), nil
		}
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return model.NewCart(), nil
	}
	return &cart, nil
}

func (s *Storage) SaveCart(ctx context.Context, key string, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(key), data, s.cfg.CartTTL).Err()
}

func (s *Storage) DeleteCart(ctx context.Context, key string) error {
	return s.client.Del(ctx, cartKey(key)).Err()
}

// Purchase operations

func (s *Storage) GetPurchases(ctx context.Context, username string) ([]model.Purchase, error) {
	data, err := s.client.Get(ctx, purchasesKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.Purchase{}, nil
		}
		return nil, err
	}

	var purchases []model.Purchase
	if err := json.Unmarshal(data, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (s *Storage) SavePurchases(ctx context.Context, username string, purchases []model.Purchase) error {
	data, err := json.Marshal(purchases)
	if err != nil {
		return err
	}
	// Purchase history persists indefinitely
	return s.client.Set(ctx, purchasesKey(username), data, 0).Err()
}

func (s *Storage) ApplyCheckout(ctx context.Context, cartK, username string, balance int, purchases []model.Purchase) error {
	data, err := json.Marshal(purchases)
	if err != nil {
		return err
	}

	// One pipeline so a crash cannot leave the balance decremented
	// without the purchases recorded
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, balanceKey(username), strconv.Itoa(balance), 0)
	pipe.Set(ctx, purchasesKey(username), data, 0)
	pipe.Del(ctx, cartKey(cartK))
	_, err = pipe.Exec(ctx)
	return err
}

// Catalog operations

func (s *Storage) GetCatalog(ctx context.Context) ([]model.Cape, error) {
	data, err := s.client.Get(ctx, catalogKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCatalogNotLoaded
		}
		return nil, err
	}

	// Stored as one JSON array blob so source order is preserved
	var capes []model.Cape
	if err := json.Unmarshal(data, &capes); err != nil {
		return nil, err
	}
	return capes, nil
}

func (s *Storage) SaveCatalog(ctx context.Context, capes []model.Cape) error {
	data, err := json.Marshal(capes)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, catalogKey(), data, 0).Err()
}
