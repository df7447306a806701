package models

import (
	"encoding/json"
	"time"
)

type Product struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Price     *float64  `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaveProductRequest struct {
	Barcode  string  `json:"barcode" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
}

// LookupSource identifies which source answered a barcode lookup.
type LookupSource string

const (
	SourceUser    LookupSource = "user"
	SourceCatalog LookupSource = "catalog"
	SourceNone    LookupSource = ""
)

// LookedUpProduct is the normalized shape both lookup sources reduce to.
// Price is nil when the catalog answered; the catalog never supplies one.
type LookedUpProduct struct {
	Barcode  string   `json:"barcode"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
}

// MarshalJSON renders SourceNone as null so a lookup miss still carries an
// explicit "source" key.
func (s LookupSource) MarshalJSON() ([]byte, error) {
	if s == SourceNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

type LookupResult struct {
	Product *LookedUpProduct `json:"product"`
	Source  LookupSource     `json:"source"`
}
