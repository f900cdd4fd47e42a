package model

// Cart is an ordered sequence of capes. Insertion order is significant and
// duplicates are allowed; there is no stock to decrement.
type Cart struct {
	Items []Cape `json:"items"`
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{Items: []Cape{}}
}

// Add appends a cape to the cart
func (c *Cart) Add(cape Cape) {
	c.Items = append(c.Items, cape)
}

// Total returns the sum of all item prices
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// Len returns the number of items in the cart
func (c *Cart) Len() int {
	return len(c.Items)
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
