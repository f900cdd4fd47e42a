package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddCapeRequest is the request body for adding a catalog cape to the cart
type AddCapeRequest struct {
	Index int `json:"index"`
}
