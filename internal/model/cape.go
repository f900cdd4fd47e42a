package model

import "time"

// Defaults applied when a raw catalog record is missing a field.
// The shop's source data is French, so the fallbacks are too.
const (
	DefaultCapeName    = "Cape inconnue"
	DefaultCapeTexture = "default.png"
	DefaultCapeOwner   = "Aucun propriétaire"
)

// Cape is a purchasable catalog item. Immutable after catalog load.
type Cape struct {
	Name    string `json:"name"`
	Texture string `json:"texture"` // image filename under the static capes directory
	Price   int    `json:"price"`   // never negative
	Owner   string `json:"owner"`
}

// Purchase is a cape bought by an account, stamped at checkout time
type Purchase struct {
	Cape
	BoughtAt time.Time `json:"bought_at"`
}
