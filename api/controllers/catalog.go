package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emoorm/storefront/api/responses"
	"github.com/emoorm/storefront/api/validators"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/search"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
)

// ListProducts serves the main product grid. Filters arrive as query
// parameters: category and brand take comma separated lists, max_price caps
// the price, q matches name or description.
func ListProducts(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		maxPrice, err := validators.ParseQueryDecimal(r, "max_price", decimal.Zero)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// The slider ceiling means "no cap".
		if maxPrice.Equal(decimal.NewFromInt(search.MaxPrice)) {
			maxPrice = decimal.Zero
		}

		snap, err := cache.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog"))
			return
		}

		state := search.FilterState{
			Categories: validators.ParseQueryList(r, "category"),
			Brands:     validators.ParseQueryList(r, "brand"),
			MaxPrice:   maxPrice,
			Query:      r.URL.Query().Get("q"),
		}
		products := search.Filter(snap.Products, state)

		switch r.URL.Query().Get("sort") {
		case "newest":
			products = search.SortByNewest(products)
		case "popular":
			products = search.SortByPopularity(products)
		}

		responses.WriteSuccess(w, products)
	}
}

// ProductDetail serves a single product by id.
func ProductDetail(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		product, ok, err := cache.Lookup(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog"))
			return
		}
		if !ok || !product.Active {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ListCategories serves the distinct category list for the filter sidebar.
func ListCategories(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return snapshotField(cache, logg, func(snap catalog.Snapshot) any { return snap.Categories })
}

// ListBrands serves the distinct brand list for the filter sidebar.
func ListBrands(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return snapshotField(cache, logg, func(snap catalog.Snapshot) any { return snap.Brands })
}

// ListDeals serves the on-sale carousel.
func ListDeals(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return snapshotField(cache, logg, func(snap catalog.Snapshot) any { return search.Deals(snap.Products) })
}

// ListStores serves the store directory.
func ListStores(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return snapshotField(cache, logg, func(snap catalog.Snapshot) any { return snap.Stores })
}

// StoreDetail serves a single store page.
func StoreDetail(cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		snap, err := cache.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog"))
			return
		}

		storeID := chi.URLParam(r, "storeId")
		for _, store := range snap.Stores {
			if store.ID == storeID {
				responses.WriteSuccess(w, store)
				return
			}
		}
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "store not found"))
	}
}

// StoreProducts serves a store's listings, newest first by default;
// ?sort=popular reorders by popularity. Remote stores (uuid ids) read fresh
// from the remote catalog so a store page never shows stale inventory; seed
// stores are answered from the snapshot.
func StoreProducts(cache *catalog.Cache, repo RemoteCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		storeID := chi.URLParam(r, "storeId")

		var products []catalog.Product
		if sellerID, err := uuid.Parse(storeID); err == nil && repo != nil {
			records, err := repo.ListProductsBySeller(r.Context(), sellerID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading store products"))
				return
			}
			products = adaptRecords(records)
		} else {
			snap, err := cache.Snapshot(r.Context())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog"))
				return
			}
			products = make([]catalog.Product, 0)
			for _, product := range snap.Products {
				if product.Active && product.SellerID == storeID {
					products = append(products, product)
				}
			}
		}

		if r.URL.Query().Get("sort") == "popular" {
			products = search.SortByPopularity(products)
		} else {
			products = search.SortByNewest(products)
		}
		responses.WriteSuccess(w, products)
	}
}

func snapshotField(cache *catalog.Cache, logg *logger.Logger, pick func(catalog.Snapshot) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		snap, err := cache.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog"))
			return
		}
		responses.WriteSuccess(w, pick(snap))
	}
}
