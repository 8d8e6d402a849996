package models

import (
	"time"

	"github.com/google/uuid"
)

// StorePhoto is a gallery image on a seller's storefront page.
type StorePhoto struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID  uuid.UUID `gorm:"column:seller_id;type:uuid;not null;index"`
	URL       string    `gorm:"column:url;not null"`
	Hint      *string   `gorm:"column:hint"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (StorePhoto) TableName() string { return "store_photos" }
