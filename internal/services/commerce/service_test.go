package commerce

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/shadowscrew/capeshop/internal/dependencies/mocks"
	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/services/catalog"
	"github.com/shadowscrew/capeshop/internal/storage/memory"
	"github.com/shadowscrew/capeshop/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	catalog *catalog.Service
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.catalog = catalog.New(s.storage, testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.catalog, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.catalog.LoadCapes([]model.Cape{
		{Name: "Cape Rubis", Texture: "rubis.png", Price: 60, Owner: "Aucun propriétaire"},
		{Name: "Cape Saphir", Texture: "saphir.png", Price: 50, Owner: "Aucun propriétaire"},
		{Name: "Cape Gratuite", Texture: "default.png", Price: 0, Owner: "Aucun propriétaire"},
	})
}

// AddToCart tests

func (s *ServiceSuite) TestAddToCartPersistsCart() {
	cart, cape, err := s.service.AddToCart(s.ctx, "cart-1", 0)
	s.Require().NoError(err)
	s.Equal("Cape Rubis", cape.Name)
	s.Equal(1, cart.Len())

	stored, err := s.storage.GetCart(s.ctx, "cart-1")
	s.Require().NoError(err)
	s.Equal(1, stored.Len())
	s.Equal("Cape Rubis", stored.Items[0].Name)
}

func (s *ServiceSuite) TestAddToCartAllowsDuplicates() {
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)
	cart, _, err := s.service.AddToCart(s.ctx, "cart-1", 0)
	s.Require().NoError(err)

	s.Equal(2, cart.Len())
	s.Equal(120, cart.Total())
}

func (s *ServiceSuite) TestAddToCartFailsForUnknownIndex() {
	_, _, err := s.service.AddToCart(s.ctx, "cart-1", 99)
	s.ErrorIs(err, model.ErrCapeNotFound)

	_, _, err = s.service.AddToCart(s.ctx, "cart-1", -1)
	s.ErrorIs(err, model.ErrCapeNotFound)
}

func (s *ServiceSuite) TestCartsAreIndependentPerKey() {
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-2", 1)

	cart1, _ := s.service.Cart(s.ctx, "cart-1")
	cart2, _ := s.service.Cart(s.ctx, "cart-2")

	s.Equal("Cape Rubis", cart1.Items[0].Name)
	s.Equal("Cape Saphir", cart2.Items[0].Name)
}

// Cart / ClearCart tests

func (s *ServiceSuite) TestCartReadsEmptyWhenNeverWritten() {
	cart, err := s.service.Cart(s.ctx, "cart-unknown")
	s.Require().NoError(err)
	s.True(cart.IsEmpty())
}

func (s *ServiceSuite) TestClearCartEmptiesCart() {
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)

	err := s.service.ClearCart(s.ctx, "cart-1")
	s.Require().NoError(err)

	cart, _ := s.service.Cart(s.ctx, "cart-1")
	s.True(cart.IsEmpty())
}

// Checkout tests

func (s *ServiceSuite) TestCheckoutSucceeds() {
	s.Require().NoError(s.storage.SaveBalance(s.ctx, "alice", 200))
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0) // 60
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 1) // 50

	receipt, err := s.service.Checkout(s.ctx, "cart-1", "alice")
	s.Require().NoError(err)

	s.Equal(110, receipt.Total)
	s.Equal(90, receipt.Balance)
	s.Len(receipt.Items, 2)
}

func (s *ServiceSuite) TestCheckoutDebitsBalanceExactly() {
	_ = s.storage.SaveBalance(s.ctx, "alice", 200)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 1)

	_, _ = s.service.Checkout(s.ctx, "cart-1", "alice")

	balance, _ := s.storage.GetBalance(s.ctx, "alice")
	s.Equal(90, balance)
}

func (s *ServiceSuite) TestCheckoutAppendsPurchasesAndEmptiesCart() {
	_ = s.storage.SaveBalance(s.ctx, "alice", 200)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 1)

	_, err := s.service.Checkout(s.ctx, "cart-1", "alice")
	s.Require().NoError(err)

	purchases, _ := s.service.Inventory(s.ctx, "alice")
	s.Len(purchases, 2)
	s.Equal("Cape Rubis", purchases[0].Name)
	s.Equal("Cape Saphir", purchases[1].Name)

	cart, _ := s.service.Cart(s.ctx, "cart-1")
	s.True(cart.IsEmpty())
}

func (s *ServiceSuite) TestCheckoutStampsPurchaseTime() {
	_ = s.storage.SaveBalance(s.ctx, "alice", 200)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)

	bought := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	s.clock.Set(bought)

	receipt, err := s.service.Checkout(s.ctx, "cart-1", "alice")
	s.Require().NoError(err)
	s.Equal(bought, receipt.Items[0].BoughtAt)
}

func (s *ServiceSuite) TestCheckoutInsufficientFundsReportsShortfall() {
	_ = s.storage.SaveBalance(s.ctx, "alice", 100)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0) // 60
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 1) // 50

	_, err := s.service.Checkout(s.ctx, "cart-1", "alice")
	s.Require().Error(err)

	var ife *model.InsufficientFundsError
	s.Require().ErrorAs(err, &ife)
	s.Equal(10, ife.Shortfall())
}

func (s *ServiceSuite) TestCheckoutInsufficientFundsChangesNothing() {
	_ = s.storage.SaveBalance(s.ctx, "alice", 100)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 1)

	_, err := s.service.Checkout(s.ctx, "cart-1", "alice")
	s.Require().Error(err)

	balance, _ := s.storage.GetBalance(s.ctx, "alice")
	s.Equal(100, balance)

	cart, _ := s.service.Cart(s.ctx, "cart-1")
	s.Equal(2, cart.Len())

	purchases, _ := s.service.Inventory(s.ctx, "alice")
	s.Empty(purchases)
}

func (s *ServiceSuite) TestCheckoutEmptyCartSucceeds() {
	receipt, err := s.service.Checkout(s.ctx, "cart-1", "alice")
	s.Require().NoError(err)

	s.Equal(0, receipt.Total)
	s.Equal(0, receipt.Balance)
	s.Empty(receipt.Items)
}

func (s *ServiceSuite) TestCheckoutFreeCapeWithZeroBalance() {
	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 2) // price 0

	receipt, err := s.service.Checkout(s.ctx, "cart-1", "alice")
	s.Require().NoError(err)
	s.Equal(0, receipt.Total)
	s.Len(receipt.Items, 1)
}

func (s *ServiceSuite) TestCheckoutAccumulatesAcrossPurchases() {
	_ = s.storage.SaveBalance(s.ctx, "alice", 200)

	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 0)
	_, _ = s.service.Checkout(s.ctx, "cart-1", "alice")

	_, _, _ = s.service.AddToCart(s.ctx, "cart-1", 1)
	_, _ = s.service.Checkout(s.ctx, "cart-1", "alice")

	purchases, _ := s.service.Inventory(s.ctx, "alice")
	s.Len(purchases, 2)

	balance, _ := s.service.Balance(s.ctx, "alice")
	s.Equal(90, balance)
}

// Balance tests

func (s *ServiceSuite) TestBalanceReadsZeroWhenNeverWritten() {
	balance, err := s.service.Balance(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Equal(0, balance)
}
