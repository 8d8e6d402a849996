package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRecord is the canonical seller listing as stored remotely. Display
// shaping (placeholder image, category fallback, popularity default) happens in
// the catalog adapters, never here.
type ProductRecord struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID    uuid.UUID       `gorm:"column:seller_id;type:uuid;not null"`
	Name        string          `gorm:"column:name;not null"`
	Description *string         `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	ImageURL    *string         `gorm:"column:image_url"`
	ImageHint   *string         `gorm:"column:image_hint"`
	Category    *string         `gorm:"column:category"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	Sold        *int            `gorm:"column:sold"`
	Rating      *float64        `gorm:"column:rating;type:numeric(3,2)"`
	OnSale      bool            `gorm:"column:on_sale;not null;default:false"`
	IsAuction   bool            `gorm:"column:is_auction;not null;default:false"`
	CurrentBid  *decimal.Decimal `gorm:"column:current_bid;type:numeric(12,2)"`
	BidEndTime  *time.Time      `gorm:"column:bid_end_time"`
	Popularity  *float64        `gorm:"column:popularity;type:numeric(3,2)"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	Seller      *SellerProfile  `gorm:"foreignKey:SellerID;references:ID"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProductRecord) TableName() string { return "products" }
