package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/emoorm/storefront/api/middleware"
	"github.com/emoorm/storefront/api/responses"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/remote"
	"github.com/emoorm/storefront/pkg/db/models"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
)

// RemoteCatalog is the fresh-read surface for routes that bypass the merged
// cache and query the remote catalog directly.
type RemoteCatalog interface {
	SearchProducts(ctx context.Context, query string) ([]models.ProductRecord, error)
	ListProductsByCategory(ctx context.Context, category string) ([]models.ProductRecord, error)
	ListDealProducts(ctx context.Context) ([]models.ProductRecord, error)
	ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductRecord, error)
	GetStore(ctx context.Context, sellerID uuid.UUID) (*remote.StoreView, error)
}

// RemoteSearch queries the remote catalog directly, popularity ordered.
func RemoteSearch(repo RemoteCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "remote catalog unavailable"))
			return
		}
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "search query is required"))
			return
		}
		records, err := repo.SearchProducts(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "searching remote catalog"))
			return
		}
		responses.WriteSuccess(w, adaptRecords(records))
	}
}

// BrowseCategory serves a category page straight from the remote catalog.
func BrowseCategory(repo RemoteCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "remote catalog unavailable"))
			return
		}
		records, err := repo.ListProductsByCategory(r.Context(), chi.URLParam(r, "category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading category"))
			return
		}
		responses.WriteSuccess(w, adaptRecords(records))
	}
}

// LiveDeals serves current on-sale listings straight from the remote catalog.
func LiveDeals(repo RemoteCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "remote catalog unavailable"))
			return
		}
		records, err := repo.ListDealProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading deals"))
			return
		}
		responses.WriteSuccess(w, adaptRecords(records))
	}
}

// SellerStoreProfile serves the caller's own store page data for the
// dashboard.
func SellerStoreProfile(repo RemoteCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "remote catalog unavailable"))
			return
		}
		sellerID, err := uuid.Parse(middleware.SellerIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "valid seller id is required"))
			return
		}
		view, err := repo.GetStore(r.Context(), sellerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "store not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading store"))
			return
		}
		responses.WriteSuccess(w, catalog.AdaptStore(*view))
	}
}

func adaptRecords(records []models.ProductRecord) []catalog.Product {
	products := make([]catalog.Product, 0, len(records))
	for _, record := range records {
		products = append(products, catalog.AdaptProduct(record))
	}
	return products
}
