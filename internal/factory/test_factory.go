package factory

import (
	"time"

	"github.com/shadowscrew/capeshop/internal/dependencies/mocks"
	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/services/auth"
	"github.com/shadowscrew/capeshop/internal/storage/memory"
	"github.com/shadowscrew/capeshop/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadTestCatalog loads a small catalog for testing
func (t *TestApp) LoadTestCatalog() {
	capes := []model.Cape{
		{Name: "Cape Ombre", Texture: "ombre.png", Price: 150, Owner: "shadow"},
		{Name: "Cape Rubis", Texture: "rubis.png", Price: 60, Owner: "Aucun propriétaire"},
		{Name: "Cape Saphir", Texture: "saphir.png", Price: 50, Owner: "Aucun propriétaire"},
		{Name: "Cape Gratuite", Texture: "default.png", Price: 0, Owner: "Aucun propriétaire"},
	}
	t.CatalogService.LoadCapes(capes)
}
