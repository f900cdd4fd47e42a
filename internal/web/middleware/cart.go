package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
)

const (
	cartCookieName = "cart"
	cartContextKey = contextKey("cart_key")
)

// GetCartKey retrieves the browser's cart key from the request context
func GetCartKey(ctx context.Context) string {
	key, _ := ctx.Value(cartContextKey).(string)
	return key
}

// CartKey returns middleware that assigns every browser a stable cart key.
// Carts belong to the browser, not the account: they exist before login and
// survive logout, the same way the original shop scoped them.
func CartKey() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var key string

			cookie, err := r.Cookie(cartCookieName)
			if err == nil && cookie.Value != "" {
				key = cookie.Value
			} else {
				key = generateCartKey()
				http.SetCookie(w, &http.Cookie{
					Name:     cartCookieName,
					Value:    key,
					Path:     "/",
					MaxAge:   86400 * 30,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), cartContextKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func generateCartKey() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "c_" + base64.RawURLEncoding.EncodeToString(b)
}
