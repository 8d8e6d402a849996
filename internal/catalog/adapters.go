package catalog

import (
	"strings"

	"github.com/emoorm/storefront/internal/remote"
	"github.com/emoorm/storefront/pkg/db/models"
)

const (
	placeholderProductImage = "https://placehold.co/400x400?text=Product"
	placeholderStoreImage   = "https://placehold.co/600x400?text=Store"

	defaultCategory   = "Uncategorized"
	defaultBrand      = "Unknown Store"
	defaultStoreName  = "Unnamed Store"
	defaultAddress    = "No address"
	defaultPopularity = 0.5

	// Calapan City, the marketplace's home region.
	defaultLatitude  = 13.4121
	defaultLongitude = 121.1764
)

// AdaptProduct shapes a remote listing for display. It is total: every record
// produces a renderable product, absent fields get neutral defaults.
func AdaptProduct(record models.ProductRecord) Product {
	product := Product{
		ID:          record.ID.String(),
		SellerID:    record.SellerID.String(),
		Name:        record.Name,
		Description: derefString(record.Description, ""),
		Price:       record.Price,
		Image: Image{
			Src:  derefString(record.ImageURL, placeholderProductImage),
			Hint: derefString(record.ImageHint, "product image"),
		},
		Category:   derefString(record.Category, defaultCategory),
		Brand:      defaultBrand,
		OnSale:     record.OnSale,
		Active:     record.IsActive,
		Stock:      record.Stock,
		DateAdded:  record.CreatedAt,
		Popularity: defaultPopularity,
		IsAuction:  record.IsAuction,
		CurrentBid: record.CurrentBid,
		BidEndTime: record.BidEndTime,
	}

	if record.Seller != nil && record.Seller.ShopName != nil && *record.Seller.ShopName != "" {
		product.Brand = *record.Seller.ShopName
	}
	if record.Popularity != nil && *record.Popularity != 0 {
		product.Popularity = *record.Popularity
	}
	if record.Sold != nil {
		product.Sold = *record.Sold
	}
	if record.Rating != nil && *record.Rating != 0 {
		rating := *record.Rating
		product.Rating = &rating
	}

	return product
}

// AdaptStore shapes a remote store view for display. Banner falls back to
// logo, then to the placeholder; missing coordinates land on the home region.
func AdaptStore(view remote.StoreView) Store {
	profile := view.Profile

	store := Store{
		ID:           profile.ID.String(),
		Name:         derefString(profile.ShopName, defaultStoreName),
		Address:      assembleAddress(profile.Address, profile.City, profile.State),
		About:        derefString(profile.About, derefString(profile.Description, "")),
		Rating:       derefFloat(profile.Rating, 0),
		ProductCount: view.ProductCount,
		Followers:    profile.FollowersCount,
		Lat:          derefFloat(profile.Latitude, defaultLatitude),
		Lng:          derefFloat(profile.Longitude, defaultLongitude),
		Genres:       make([]GenreBadge, 0, len(profile.Genres)),
		Photos:       make([]Image, 0, len(profile.Photos)),
	}

	src := derefString(profile.BannerURL, "")
	if src == "" {
		src = derefString(profile.LogoURL, placeholderStoreImage)
	}
	store.Image = Image{Src: src, Hint: "store banner"}

	for _, genre := range profile.Genres {
		store.Genres = append(store.Genres, GenreBadge{Icon: genre.Icon, Text: genre.Text})
	}
	for _, photo := range profile.Photos {
		store.Photos = append(store.Photos, Image{
			Src:  photo.URL,
			Hint: derefString(photo.Hint, "store photo"),
		})
	}

	return store
}

func assembleAddress(parts ...*string) string {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != nil && strings.TrimSpace(*part) != "" {
			present = append(present, *part)
		}
	}
	if len(present) == 0 {
		return defaultAddress
	}
	return strings.Join(present, ", ")
}

func derefString(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func derefFloat(value *float64, fallback float64) float64 {
	if value == nil || *value == 0 {
		return fallback
	}
	return *value
}
