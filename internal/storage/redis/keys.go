package redis

import (
	"fmt"

	"github.com/shadowscrew/capeshop/internal/model"
)

// Key prefix for all shop data
const keyPrefix = "capeshop"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// accountKey returns the Redis key for an Account, keyed by username
func accountKey(username string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, username)
}

// balanceKey returns the Redis key for an account's currency balance
func balanceKey(username string) string {
	return fmt.Sprintf("%s:balance:%s", keyPrefix, username)
}

// cartKey returns the Redis key for a cart
func cartKey(key string) string {
	return fmt.Sprintf("%s:cart:%s", keyPrefix, key)
}

// purchasesKey returns the Redis key for an account's purchase history
func purchasesKey(username string) string {
	return fmt.Sprintf("%s:purchases:%s", keyPrefix, username)
}

// catalogKey returns the Redis key for the normalized catalog blob
func catalogKey() string {
	return fmt.Sprintf("%s:catalog", keyPrefix)
}
