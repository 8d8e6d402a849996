package catalog

import (
	"testing"
	"time"

	"github.com/emoorm/storefront/internal/remote"
	"github.com/emoorm/storefront/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestAdaptProductDefaults(t *testing.T) {
	record := models.ProductRecord{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Name:     "Bare Listing",
		Price:    decimal.NewFromInt(100),
	}

	product := AdaptProduct(record)

	if product.Image.Src != placeholderProductImage {
		t.Fatalf("expected placeholder image, got %q", product.Image.Src)
	}
	if product.Image.Hint != "product image" {
		t.Fatalf("expected default hint, got %q", product.Image.Hint)
	}
	if product.Category != "Uncategorized" {
		t.Fatalf("expected Uncategorized, got %q", product.Category)
	}
	if product.Brand != "Unknown Store" {
		t.Fatalf("expected Unknown Store, got %q", product.Brand)
	}
	if product.Popularity != 0.5 {
		t.Fatalf("expected neutral popularity 0.5, got %v", product.Popularity)
	}
	if product.Sold != 0 {
		t.Fatalf("expected sold 0, got %d", product.Sold)
	}
	if product.Rating != nil {
		t.Fatalf("expected absent rating, got %v", *product.Rating)
	}
	if product.Description != "" {
		t.Fatalf("expected empty description, got %q", product.Description)
	}
}

func TestAdaptProductPassThrough(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := models.ProductRecord{
		ID:          uuid.New(),
		SellerID:    uuid.New(),
		Name:        "Wild Honey (1L)",
		Description: strPtr("Raw forest honey."),
		Price:       decimal.NewFromInt(650),
		ImageURL:    strPtr("https://cdn.example/honey.jpg"),
		ImageHint:   strPtr("honey jar"),
		Category:    strPtr("Local Delicacies"),
		Stock:       12,
		Sold:        intPtr(48),
		Rating:      floatPtr(4.7),
		OnSale:      true,
		Popularity:  floatPtr(0.9),
		CreatedAt:   created,
		Seller:      &models.SellerProfile{ShopName: strPtr("Mangyan Treasures")},
	}

	product := AdaptProduct(record)

	if product.Brand != "Mangyan Treasures" {
		t.Fatalf("expected shop name as brand, got %q", product.Brand)
	}
	if product.Category != "Local Delicacies" {
		t.Fatalf("unexpected category %q", product.Category)
	}
	if product.Popularity != 0.9 {
		t.Fatalf("unexpected popularity %v", product.Popularity)
	}
	if product.Sold != 48 {
		t.Fatalf("unexpected sold %d", product.Sold)
	}
	if product.Rating == nil || *product.Rating != 4.7 {
		t.Fatalf("unexpected rating %v", product.Rating)
	}
	if !product.DateAdded.Equal(created) {
		t.Fatalf("unexpected date added %v", product.DateAdded)
	}
	if !product.OnSale {
		t.Fatal("expected on sale")
	}
}

func TestAdaptStoreDefaults(t *testing.T) {
	view := remote.StoreView{
		Profile: models.SellerProfile{ID: uuid.New()},
	}

	store := AdaptStore(view)

	if store.Name != "Unnamed Store" {
		t.Fatalf("unexpected name %q", store.Name)
	}
	if store.Address != "No address" {
		t.Fatalf("unexpected address %q", store.Address)
	}
	if store.Image.Src != placeholderStoreImage {
		t.Fatalf("unexpected image %q", store.Image.Src)
	}
	if store.Lat != defaultLatitude || store.Lng != defaultLongitude {
		t.Fatalf("expected home-region coordinates, got %v,%v", store.Lat, store.Lng)
	}
	if store.Genres == nil || store.Photos == nil {
		t.Fatal("expected empty, non-nil genre and photo slices")
	}
}

func TestAdaptStoreAddressAndBannerFallback(t *testing.T) {
	view := remote.StoreView{
		Profile: models.SellerProfile{
			ID:             uuid.New(),
			ShopName:       strPtr("Naujan Organics"),
			LogoURL:        strPtr("https://cdn.example/logo.png"),
			Address:        strPtr("Naujan Public Market"),
			State:          strPtr("Oriental Mindoro"),
			Rating:         floatPtr(4.2),
			FollowersCount: 31,
			Genres: []models.StoreGenre{
				{Icon: "leaf", Text: "Organic"},
			},
			Photos: []models.StorePhoto{
				{URL: "https://cdn.example/front.jpg"},
			},
		},
		ProductCount: 7,
	}

	store := AdaptStore(view)

	// City missing: joined parts skip blanks.
	if store.Address != "Naujan Public Market, Oriental Mindoro" {
		t.Fatalf("unexpected address %q", store.Address)
	}
	if store.Image.Src != "https://cdn.example/logo.png" {
		t.Fatalf("expected banner to fall back to logo, got %q", store.Image.Src)
	}
	if store.ProductCount != 7 {
		t.Fatalf("unexpected product count %d", store.ProductCount)
	}
	if len(store.Genres) != 1 || store.Genres[0].Icon != "leaf" {
		t.Fatalf("unexpected genres %+v", store.Genres)
	}
	if len(store.Photos) != 1 || store.Photos[0].Hint != "store photo" {
		t.Fatalf("unexpected photos %+v", store.Photos)
	}
}
