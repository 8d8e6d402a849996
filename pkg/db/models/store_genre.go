package models

import (
	"time"

	"github.com/google/uuid"
)

// StoreGenre is a badge a seller pins on their storefront (icon name plus
// label). Icon names pass through unvalidated; the client renders a fallback
// glyph for names it does not know.
type StoreGenre struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID  uuid.UUID `gorm:"column:seller_id;type:uuid;not null;index"`
	Icon      string    `gorm:"column:icon;not null"`
	Text      string    `gorm:"column:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (StoreGenre) TableName() string { return "store_genres" }
