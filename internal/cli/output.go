package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Catalog:
		o.printCatalog(v)
	case Cart:
		o.printCart(v)
	case Receipt:
		o.printReceipt(v)
	case Inventory:
		o.printInventory(v)
	case Balance:
		o.printBalance(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Cape response type
type Cape struct {
	Name    string `json:"name"`
	Texture string `json:"texture"`
	Price   int    `json:"price"`
	Owner   string `json:"owner"`
}

// Catalog response type
type Catalog struct {
	Capes []Cape `json:"capes"`
}

// Cart response type
type Cart struct {
	Items []Cape `json:"items"`
	Total int    `json:"total"`
}

// Purchase response type
type Purchase struct {
	Cape
	BoughtAt time.Time `json:"bought_at"`
}

// Receipt response type
type Receipt struct {
	Total   int        `json:"total"`
	Balance int        `json:"balance"`
	Items   []Purchase `json:"items"`
}

// Inventory response type
type Inventory struct {
	Purchases []Purchase `json:"purchases"`
}

// Balance response type
type Balance struct {
	Balance int `json:"balance"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printCatalog(c Catalog) {
	fmt.Printf("Catalog (%d capes):\n", len(c.Capes))
	for i, cape := range c.Capes {
		fmt.Printf("  [%d] %s - %d ¥ (owner: %s)\n", i, cape.Name, cape.Price, cape.Owner)
	}
}

func (o *Output) printCart(c Cart) {
	if len(c.Items) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	fmt.Printf("Cart (%d items):\n", len(c.Items))
	for _, cape := range c.Items {
		fmt.Printf("  - %s: %d ¥\n", cape.Name, cape.Price)
	}
	fmt.Printf("Total: %d ¥\n", c.Total)
}

func (o *Output) printReceipt(r Receipt) {
	fmt.Printf("Purchased %d capes for %d ¥\n", len(r.Items), r.Total)
	for _, p := range r.Items {
		fmt.Printf("  - %s\n", p.Name)
	}
	fmt.Printf("Remaining balance: %d ¥\n", r.Balance)
}

func (o *Output) printInventory(inv Inventory) {
	if len(inv.Purchases) == 0 {
		fmt.Println("Inventory is empty")
		return
	}
	fmt.Printf("Inventory (%d capes):\n", len(inv.Purchases))
	for _, p := range inv.Purchases {
		fmt.Printf("  - %s (bought %s)\n", p.Name, p.BoughtAt.Format(time.RFC3339))
	}
}

func (o *Output) printBalance(b Balance) {
	fmt.Printf("Balance: %d ¥\n", b.Balance)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
