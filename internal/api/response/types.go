package response

import (
	"time"

	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/services/auth"
	"github.com/shadowscrew/capeshop/internal/services/commerce"
)

// User represents an account in API responses
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       string(u.ID),
		Username: u.Username,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Cape represents a catalog cape in API responses
type Cape struct {
	Name    string `json:"name"`
	Texture string `json:"texture"`
	Price   int    `json:"price"`
	Owner   string `json:"owner"`
}

// CapeFromModel converts a model.Cape
func CapeFromModel(c model.Cape) Cape {
	return Cape{
		Name:    c.Name,
		Texture: c.Texture,
		Price:   c.Price,
		Owner:   c.Owner,
	}
}

// Catalog is the response for the catalog listing
type Catalog struct {
	Capes []Cape `json:"capes"`
}

// CatalogFromModel converts a catalog slice
func CatalogFromModel(capes []model.Cape) Catalog {
	out := make([]Cape, len(capes))
	for i, c := range capes {
		out[i] = CapeFromModel(c)
	}
	return Catalog{Capes: out}
}

// Cart represents a cart in API responses
type Cart struct {
	Items []Cape `json:"items"`
	Total int    `json:"total"`
}

// CartFromModel converts a model.Cart
func CartFromModel(c *model.Cart) Cart {
	items := make([]Cape, len(c.Items))
	for i, cape := range c.Items {
		items[i] = CapeFromModel(cape)
	}
	return Cart{
		Items: items,
		Total: c.Total(),
	}
}

// Purchase represents an owned cape in API responses
type Purchase struct {
	Cape
	BoughtAt time.Time `json:"bought_at"`
}

// PurchaseFromModel converts a model.Purchase
func PurchaseFromModel(p model.Purchase) Purchase {
	return Purchase{
		Cape:     CapeFromModel(p.Cape),
		BoughtAt: p.BoughtAt,
	}
}

// Inventory is the response for the inventory listing
type Inventory struct {
	Purchases []Purchase `json:"purchases"`
}

// InventoryFromModel converts a purchases slice
func InventoryFromModel(purchases []model.Purchase) Inventory {
	out := make([]Purchase, len(purchases))
	for i, p := range purchases {
		out[i] = PurchaseFromModel(p)
	}
	return Inventory{Purchases: out}
}

// Balance is the response for the balance endpoint
type Balance struct {
	Balance int `json:"balance"`
}

// Receipt is the response after a successful checkout
type Receipt struct {
	Total   int        `json:"total"`
	Balance int        `json:"balance"`
	Items   []Purchase `json:"items"`
}

// ReceiptFromModel converts a commerce.Receipt
func ReceiptFromModel(r *commerce.Receipt) Receipt {
	items := make([]Purchase, len(r.Items))
	for i, p := range r.Items {
		items[i] = PurchaseFromModel(p)
	}
	return Receipt{
		Total:   r.Total,
		Balance: r.Balance,
		Items:   items,
	}
}
