package models

import (
	"time"

	"github.com/google/uuid"
)

// StoreFollower links a user to a seller they follow. The (user, seller) pair
// is unique; duplicate inserts surface as a unique violation the follow
// service treats as a no-op.
type StoreFollower struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_store_followers_user_seller"`
	SellerID  uuid.UUID `gorm:"column:seller_id;type:uuid;not null;uniqueIndex:idx_store_followers_user_seller"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (StoreFollower) TableName() string { return "store_followers" }
