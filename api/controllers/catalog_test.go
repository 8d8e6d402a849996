package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/remote"
	"github.com/emoorm/storefront/pkg/db/models"
	"github.com/emoorm/storefront/pkg/logger"
)

type failingSource struct{}

func (failingSource) ListActiveProducts(ctx context.Context) ([]models.ProductRecord, error) {
	return nil, errors.New("remote unavailable")
}

func (failingSource) ListActiveStores(ctx context.Context) ([]remote.StoreView, error) {
	return nil, errors.New("remote unavailable")
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

// seedCache serves the static seed; the remote source always fails.
func seedCache(t *testing.T) *catalog.Cache {
	t.Helper()
	cache, err := catalog.NewCache(failingSource{}, testLogger(), nil, catalog.Options{UseSeed: true})
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}
	return cache
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestListProductsFiltersByQuery(t *testing.T) {
	handler := ListProducts(seedCache(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?q=honey", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var products []catalog.Product
	decodeData(t, resp, &products)
	if len(products) == 0 {
		t.Fatal("expected at least one match for honey")
	}
	for _, product := range products {
		name := strings.ToLower(product.Name)
		description := strings.ToLower(product.Description)
		if !strings.Contains(name, "honey") && !strings.Contains(description, "honey") {
			t.Fatalf("product %q does not match the query", product.Name)
		}
	}
}

func TestListProductsRejectsBadMaxPrice(t *testing.T) {
	handler := ListProducts(seedCache(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?max_price=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/products/{productId}", ProductDetail(seedCache(t), nil))

	req := httptest.NewRequest(http.MethodGet, "/products/3", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var product catalog.Product
	decodeData(t, resp, &product)
	if product.Name != "Wild Honey (500ml)" {
		t.Fatalf("unexpected product %q", product.Name)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/products/{productId}", ProductDetail(seedCache(t), nil))

	req := httptest.NewRequest(http.MethodGet, "/products/does-not-exist", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestListDealsOnlyOnSale(t *testing.T) {
	handler := ListDeals(seedCache(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/deals", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var deals []catalog.Product
	decodeData(t, resp, &deals)
	if len(deals) == 0 || len(deals) > 8 {
		t.Fatalf("unexpected deal count %d", len(deals))
	}
	for _, deal := range deals {
		if !deal.OnSale {
			t.Fatalf("product %q is not on sale", deal.Name)
		}
	}
}

func TestStoreDetailNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/stores/{storeId}", StoreDetail(seedCache(t), nil))

	req := httptest.NewRequest(http.MethodGet, "/stores/nope", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
