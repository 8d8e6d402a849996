package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/emoorm/storefront/api/middleware"
	"github.com/emoorm/storefront/api/responses"
	"github.com/emoorm/storefront/api/validators"
	"github.com/emoorm/storefront/internal/remote"
	sellersvc "github.com/emoorm/storefront/internal/seller"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
)

type sellerProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	ImageHint   string          `json:"imageHint,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock" validate:"min=0"`
	OnSale      bool            `json:"onSale,omitempty"`
}

func (r sellerProductRequest) toInput() sellersvc.ProductInput {
	return sellersvc.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		ImageHint:   r.ImageHint,
		Category:    r.Category,
		Stock:       r.Stock,
		OnSale:      r.OnSale,
	}
}

// SellerCreateProduct handles listing creation from the dashboard.
func SellerCreateProduct(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		var payload sellerProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		record, err := svc.CreateProduct(r.Context(), middleware.SellerIDFromContext(r.Context()), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// SellerUpdateProduct applies a full listing edit.
func SellerUpdateProduct(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		var payload sellerProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		record, err := svc.UpdateProduct(
			r.Context(),
			middleware.SellerIDFromContext(r.Context()),
			chi.URLParam(r, "productId"),
			payload.toInput(),
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// SellerDeleteProduct soft-deletes a listing.
func SellerDeleteProduct(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		err := svc.DeactivateProduct(r.Context(), middleware.SellerIDFromContext(r.Context()), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deactivated"})
	}
}

// SellerListProducts serves the dashboard inventory, inactive listings
// included.
func SellerListProducts(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		records, err := svc.ListProducts(r.Context(), middleware.SellerIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

type storeSettingsRequest struct {
	ShopName    *string `json:"shopName,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
	BannerURL   *string `json:"bannerUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SellerUpdateSettings applies shop name and branding edits.
func SellerUpdateSettings(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		var payload storeSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		settings := remote.StoreSettings{
			ShopName:    payload.ShopName,
			LogoURL:     payload.LogoURL,
			BannerURL:   payload.BannerURL,
			Description: payload.Description,
		}
		if err := svc.UpdateStoreSettings(r.Context(), middleware.SellerIDFromContext(r.Context()), settings); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

type storeAboutRequest struct {
	About string `json:"about" validate:"required"`
}

// SellerUpdateAbout replaces the store's about text.
func SellerUpdateAbout(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		var payload storeAboutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.UpdateStoreAbout(r.Context(), middleware.SellerIDFromContext(r.Context()), payload.About); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

type storeLocationRequest struct {
	Address   *string  `json:"address,omitempty"`
	City      *string  `json:"city,omitempty"`
	State     *string  `json:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// SellerUpdateLocation applies address and coordinate edits.
func SellerUpdateLocation(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		var payload storeLocationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		loc := remote.StoreLocation{
			Address:   payload.Address,
			City:      payload.City,
			State:     payload.State,
			Latitude:  payload.Latitude,
			Longitude: payload.Longitude,
		}
		if err := svc.UpdateStoreLocation(r.Context(), middleware.SellerIDFromContext(r.Context()), loc); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

type storeGenresRequest struct {
	Genres []storeGenreRequest `json:"genres" validate:"required,dive"`
}

type storeGenreRequest struct {
	Icon string `json:"icon,omitempty"`
	Text string `json:"text" validate:"required"`
}

// SellerReplaceGenres swaps the storefront badge row.
func SellerReplaceGenres(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		var payload storeGenresRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		genres := make([]sellersvc.GenreInput, 0, len(payload.Genres))
		for _, genre := range payload.Genres {
			genres = append(genres, sellersvc.GenreInput{Icon: genre.Icon, Text: genre.Text})
		}
		if err := svc.ReplaceGenres(r.Context(), middleware.SellerIDFromContext(r.Context()), genres); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

type storePhotoRequest struct {
	URL       string `json:"url" validate:"required,url"`
	Hint      string `json:"hint,omitempty"`
	SortOrder int    `json:"sortOrder,omitempty" validate:"omitempty,min=0"`
}

// SellerAddPhoto appends a gallery photo.
func SellerAddPhoto(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		var payload storePhotoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input := sellersvc.PhotoInput{URL: payload.URL, Hint: payload.Hint, SortOrder: payload.SortOrder}
		photo, err := svc.AddPhoto(r.Context(), middleware.SellerIDFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, photo)
	}
}

// SellerRemovePhoto deletes a gallery photo.
func SellerRemovePhoto(svc sellersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		err := svc.RemovePhoto(r.Context(), middleware.SellerIDFromContext(r.Context()), chi.URLParam(r, "photoId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}
