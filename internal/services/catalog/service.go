package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/storage"
)

// Service owns the normalized cape catalog. The catalog is loaded once at
// startup, published read-only, and mirrored to storage so a Redis-backed
// deployment can restart without the source file.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	capes  []model.Cape
	loaded bool
}

// New creates a new catalog Service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// rawCape is a catalog record as it appears in the source document.
// Price is kept raw because the source mixes strings ("150¥") and numbers.
type rawCape struct {
	Name    string          `json:"name"`
	Texture string          `json:"texture"`
	Price   json.RawMessage `json:"price"`
	Owner   string          `json:"owner"`
}

// LoadFromFile reads the catalog JSON document at path, normalizes each
// record, mirrors the result to storage, and publishes it. Source order is
// preserved.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raws []rawCape
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	capes := make([]model.Cape, len(raws))
	for i, raw := range raws {
		capes[i] = normalize(raw)
	}

	if err := s.storage.SaveCatalog(ctx, capes); err != nil {
		return err
	}

	s.publish(capes)
	s.logger.Info("catalog loaded", slog.String("path", path), slog.Int("capes", len(capes)))
	return nil
}

// LoadFromStorage loads a previously mirrored catalog from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	capes, err := s.storage.GetCatalog(ctx)
	if err != nil {
		return err
	}
	s.publish(capes)
	return nil
}

// LoadCapes directly publishes a slice of capes (useful for testing)
func (s *Service) LoadCapes(capes []model.Cape) {
	s.publish(capes)
}

func (s *Service) publish(capes []model.Cape) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capes = make([]model.Cape, len(capes))
	copy(s.capes, capes)
	s.loaded = true
}

// Capes returns the published catalog in source order.
// An unloaded catalog reads as empty.
func (s *Service) Capes() []model.Cape {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Cape, len(s.capes))
	copy(result, s.capes)
	return result
}

// Cape returns the catalog entry at the given index
func (s *Service) Cape(index int) (model.Cape, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.capes) {
		return model.Cape{}, model.ErrCapeNotFound
	}
	return s.capes[index], nil
}

// IsLoaded returns whether the catalog has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of capes in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.capes)
}

// normalize converts a raw record into a Cape, defaulting missing fields
func normalize(raw rawCape) model.Cape {
	cape := model.Cape{
		Name:    raw.Name,
		Texture: raw.Texture,
		Price:   parsePrice(raw.Price),
		Owner:   raw.Owner,
	}
	if cape.Name == "" {
		cape.Name = model.DefaultCapeName
	}
	if cape.Texture == "" {
		cape.Texture = model.DefaultCapeTexture
	}
	if cape.Owner == "" {
		cape.Owner = model.DefaultCapeOwner
	}
	return cape
}

// parsePrice extracts the digits from a raw price value and parses them as a
// non-negative integer. Handles "150¥", "12 000" and plain numbers alike;
// missing or unparseable values read as 0.
func parsePrice(raw json.RawMessage) int {
	digits := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b >= '0' && b <= '9' {
			digits = append(digits, b)
		}
	}
	if len(digits) == 0 {
		return 0
	}

	price, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return price
}
