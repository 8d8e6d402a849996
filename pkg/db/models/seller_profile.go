package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SellerProfile is the remote store record backing the storefront's store
// directory and the seller dashboard settings pages.
type SellerProfile struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ShopName       *string        `gorm:"column:shop_name"`
	LogoURL        *string        `gorm:"column:logo_url"`
	BannerURL      *string        `gorm:"column:banner_url"`
	Description    *string        `gorm:"column:description"`
	About          *string        `gorm:"column:about"`
	Address        *string        `gorm:"column:address"`
	City           *string        `gorm:"column:city"`
	State          *string        `gorm:"column:state"`
	Latitude       *float64       `gorm:"column:latitude;type:numeric(9,6)"`
	Longitude      *float64       `gorm:"column:longitude;type:numeric(9,6)"`
	Rating         *float64       `gorm:"column:rating;type:numeric(3,2)"`
	FollowersCount int            `gorm:"column:followers_count;not null;default:0"`
	DeliveryAreas  pq.StringArray `gorm:"column:delivery_areas;type:text[]"`
	Genres         []StoreGenre   `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	Photos         []StorePhoto   `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (SellerProfile) TableName() string { return "seller_profiles" }
