package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/emoorm/storefront/api/middleware"
	cartsvc "github.com/emoorm/storefront/internal/cart"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
)

type stubCatalog map[string]catalog.Product

func (s stubCatalog) Lookup(ctx context.Context, id string) (catalog.Product, bool, error) {
	product, ok := s[id]
	return product, ok, nil
}

func testCartService(t *testing.T) cartsvc.Service {
	t.Helper()
	state, err := clientstate.NewStore(clientstate.NewMemoryKV(), testLogger())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	catalogStub := stubCatalog{
		"p1": {ID: "p1", Name: "Calamansi Juice", Price: decimal.NewFromInt(120), Active: true},
	}
	svc, err := cartsvc.NewService(cartsvc.ServiceParams{State: state, Catalog: catalogStub})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc
}

func deviceRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithDeviceID(req.Context(), "device-1"))
}

func TestCartAddAndView(t *testing.T) {
	svc := testCartService(t)

	addResp := httptest.NewRecorder()
	CartAdd(svc, nil).ServeHTTP(addResp, deviceRequest(http.MethodPost, "/api/v1/cart/items", `{"productId":"p1"}`))
	if addResp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", addResp.Code)
	}

	var lines []cartsvc.Line
	decodeData(t, addResp, &lines)
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("unexpected lines %v", lines)
	}

	viewResp := httptest.NewRecorder()
	CartView(svc, nil).ServeHTTP(viewResp, deviceRequest(http.MethodGet, "/api/v1/cart", ""))
	if viewResp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", viewResp.Code)
	}

	var view cartsvc.View
	decodeData(t, viewResp, &view)
	if !view.Subtotal.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("unexpected subtotal %s", view.Subtotal)
	}
	if !view.Total.Equal(decimal.NewFromInt(170)) {
		t.Fatalf("expected flat shipping applied, got total %s", view.Total)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	resp := httptest.NewRecorder()
	CartAdd(testCartService(t), nil).ServeHTTP(resp, deviceRequest(http.MethodPost, "/api/v1/cart/items", `{"productId":"ghost"}`))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartViewMissingDevice(t *testing.T) {
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	CartView(testCartService(t), nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemove(t *testing.T) {
	svc := testCartService(t)

	addResp := httptest.NewRecorder()
	CartAdd(svc, nil).ServeHTTP(addResp, deviceRequest(http.MethodPost, "/api/v1/cart/items", `{"productId":"p1"}`))

	r := chi.NewRouter()
	r.Delete("/cart/items/{productId}", CartRemove(svc, nil))

	removeResp := httptest.NewRecorder()
	r.ServeHTTP(removeResp, deviceRequest(http.MethodDelete, "/cart/items/p1", ""))
	if removeResp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", removeResp.Code)
	}

	var lines []cartsvc.Line
	decodeData(t, removeResp, &lines)
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %v", lines)
	}
}
