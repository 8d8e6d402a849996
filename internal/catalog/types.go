package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Image pairs a source URL with an accessibility hint.
type Image struct {
	Src  string `json:"src"`
	Hint string `json:"hint"`
}

// Product is the display shape every storefront surface renders. Adapters
// guarantee all fields are populated; nothing downstream re-checks defaults.
type Product struct {
	ID          string           `json:"id"`
	SellerID    string           `json:"sellerId,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Image       Image            `json:"image"`
	Category    string           `json:"category"`
	Brand       string           `json:"brand"`
	OnSale      bool             `json:"onSale"`
	LowStock    bool             `json:"lowStock"`
	Active      bool             `json:"-"`
	Stock       int              `json:"stock"`
	DateAdded   time.Time        `json:"dateAdded"`
	Popularity  float64          `json:"popularity"`
	Sold        int              `json:"sold"`
	Rating      *float64         `json:"rating,omitempty"`
	IsAuction   bool             `json:"isAuction"`
	CurrentBid  *decimal.Decimal `json:"currentBid,omitempty"`
	BidEndTime  *time.Time       `json:"bidEndTime,omitempty"`
}

// GenreBadge is a store's icon/label badge. Icon names are passed through
// verbatim; clients fall back to a default glyph for unknown names.
type GenreBadge struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Store is the display shape for the store directory and store pages.
type Store struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	About        string       `json:"about"`
	Image        Image        `json:"image"`
	Rating       float64      `json:"rating"`
	ProductCount int          `json:"productCount"`
	Followers    int          `json:"followers"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	Genres       []GenreBadge `json:"genres"`
	Photos       []Image      `json:"photos"`
}
