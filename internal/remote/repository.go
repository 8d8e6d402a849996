package remote

import (
	"context"

	"github.com/emoorm/storefront/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreView aggregates a seller profile with its active product count. Genres
// and photos ride along on the profile.
type StoreView struct {
	Profile      models.SellerProfile
	ProductCount int
}

// Repository is the gorm-backed remote catalog source.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListActiveProducts returns every active listing, newest first, with the
// seller profile joined for brand attribution.
func (r *Repository) ListActiveProducts(ctx context.Context) ([]models.ProductRecord, error) {
	var records []models.ProductRecord
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetProduct loads a single listing regardless of active state.
func (r *Repository) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductRecord, error) {
	var record models.ProductRecord
	if err := r.db.WithContext(ctx).Preload("Seller").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListProductsBySeller returns a seller's active listings, newest first.
func (r *Repository) ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductRecord, error) {
	var records []models.ProductRecord
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("seller_id = ? AND is_active = ?", sellerID, true).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListAllProductsBySeller returns every listing a seller owns, inactive
// included. Dashboard only.
func (r *Repository) ListAllProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductRecord, error) {
	var records []models.ProductRecord
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListProductsByCategory returns active listings in the given category.
func (r *Repository) ListProductsByCategory(ctx context.Context, category string) ([]models.ProductRecord, error) {
	var records []models.ProductRecord
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("category = ? AND is_active = ?", category, true).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// SearchProducts matches active listings on name, description, or category and
// orders them by popularity.
func (r *Repository) SearchProducts(ctx context.Context, query string) ([]models.ProductRecord, error) {
	pattern := "%" + query + "%"
	var records []models.ProductRecord
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("is_active = ?", true).
		Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern).
		Order("popularity DESC NULLS LAST").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListDealProducts returns active on-sale listings, newest first.
func (r *Repository) ListDealProducts(ctx context.Context) ([]models.ProductRecord, error) {
	var records []models.ProductRecord
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("on_sale = ? AND is_active = ?", true, true).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListActiveStores returns every seller profile, newest first, with genres,
// photos, and the active product count attached.
func (r *Repository) ListActiveStores(ctx context.Context) ([]StoreView, error) {
	var profiles []models.SellerProfile
	err := r.db.WithContext(ctx).
		Preload("Genres", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Photos", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []StoreView{}, nil
	}

	counts, err := r.activeProductCounts(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]StoreView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, StoreView{
			Profile:      profile,
			ProductCount: counts[profile.ID],
		})
	}
	return views, nil
}

// GetStore loads a single seller profile with its aggregates.
func (r *Repository) GetStore(ctx context.Context, sellerID uuid.UUID) (*StoreView, error) {
	var profile models.SellerProfile
	err := r.db.WithContext(ctx).
		Preload("Genres", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Photos", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		First(&profile, "id = ?", sellerID).Error
	if err != nil {
		return nil, err
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(&models.ProductRecord{}).
		Where("seller_id = ? AND is_active = ?", sellerID, true).
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	return &StoreView{Profile: profile, ProductCount: int(count)}, nil
}

func (r *Repository) activeProductCounts(ctx context.Context) (map[uuid.UUID]int, error) {
	type row struct {
		SellerID uuid.UUID
		Total    int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.ProductRecord{}).
		Select("seller_id, COUNT(*) AS total").
		Where("is_active = ?", true).
		Group("seller_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.SellerID] = r.Total
	}
	return counts, nil
}

// CreateProduct inserts a new listing.
func (r *Repository) CreateProduct(ctx context.Context, record *models.ProductRecord) (*models.ProductRecord, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateProduct saves the full listing row.
func (r *Repository) UpdateProduct(ctx context.Context, record *models.ProductRecord) (*models.ProductRecord, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// DeactivateProduct soft-deletes a listing; the row stays for order history.
func (r *Repository) DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProductRecord{}).
		Where("id = ? AND seller_id = ?", productID, sellerID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// StoreSettings are the profile fields a seller edits on the settings page.
type StoreSettings struct {
	ShopName    *string
	LogoURL     *string
	BannerURL   *string
	Description *string
}

// UpdateStoreSettings applies the provided settings fields.
func (r *Repository) UpdateStoreSettings(ctx context.Context, sellerID uuid.UUID, settings StoreSettings) error {
	updates := map[string]any{}
	if settings.ShopName != nil {
		updates["shop_name"] = *settings.ShopName
	}
	if settings.LogoURL != nil {
		updates["logo_url"] = *settings.LogoURL
	}
	if settings.BannerURL != nil {
		updates["banner_url"] = *settings.BannerURL
	}
	if settings.Description != nil {
		updates["description"] = *settings.Description
	}
	if len(updates) == 0 {
		return nil
	}
	return r.updateProfile(ctx, sellerID, updates)
}

// UpdateStoreAbout replaces the long-form about text.
func (r *Repository) UpdateStoreAbout(ctx context.Context, sellerID uuid.UUID, about string) error {
	return r.updateProfile(ctx, sellerID, map[string]any{"about": about})
}

// StoreLocation carries the address fields plus coordinates.
type StoreLocation struct {
	Address   *string
	City      *string
	State     *string
	Latitude  *float64
	Longitude *float64
}

// UpdateStoreLocation applies the provided location fields.
func (r *Repository) UpdateStoreLocation(ctx context.Context, sellerID uuid.UUID, loc StoreLocation) error {
	updates := map[string]any{}
	if loc.Address != nil {
		updates["address"] = *loc.Address
	}
	if loc.City != nil {
		updates["city"] = *loc.City
	}
	if loc.State != nil {
		updates["state"] = *loc.State
	}
	if loc.Latitude != nil {
		updates["latitude"] = *loc.Latitude
	}
	if loc.Longitude != nil {
		updates["longitude"] = *loc.Longitude
	}
	if len(updates) == 0 {
		return nil
	}
	return r.updateProfile(ctx, sellerID, updates)
}

func (r *Repository) updateProfile(ctx context.Context, sellerID uuid.UUID, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.SellerProfile{}).
		Where("id = ?", sellerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceStoreGenres swaps the seller's genre badges for the provided set.
func (r *Repository) ReplaceStoreGenres(ctx context.Context, sellerID uuid.UUID, genres []models.StoreGenre) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("seller_id = ?", sellerID).Delete(&models.StoreGenre{}).Error; err != nil {
		return err
	}
	if len(genres) == 0 {
		return nil
	}
	for i := range genres {
		genres[i].SellerID = sellerID
	}
	return tx.Create(&genres).Error
}

// AddStorePhoto appends a gallery photo.
func (r *Repository) AddStorePhoto(ctx context.Context, photo *models.StorePhoto) (*models.StorePhoto, error) {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// RemoveStorePhoto deletes a gallery photo owned by the seller.
func (r *Repository) RemoveStorePhoto(ctx context.Context, sellerID, photoID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", photoID, sellerID).
		Delete(&models.StorePhoto{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Follow records that the user follows the seller.
func (r *Repository) Follow(ctx context.Context, userID, sellerID uuid.UUID) error {
	follower := models.StoreFollower{UserID: userID, SellerID: sellerID}
	return r.db.WithContext(ctx).Create(&follower).Error
}

// Unfollow removes the follow edge if present.
func (r *Repository) Unfollow(ctx context.Context, userID, sellerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND seller_id = ?", userID, sellerID).
		Delete(&models.StoreFollower{}).Error
}

// IsFollowing reports whether the follow edge exists.
func (r *Repository) IsFollowing(ctx context.Context, userID, sellerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.StoreFollower{}).
		Where("user_id = ? AND seller_id = ?", userID, sellerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AdjustFollowerCount shifts the cached follower counter by delta, clamped at
// zero.
func (r *Repository) AdjustFollowerCount(ctx context.Context, sellerID uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&models.SellerProfile{}).
		Where("id = ?", sellerID).
		Update("followers_count", gorm.Expr("GREATEST(followers_count + ?, 0)", delta)).Error
}
