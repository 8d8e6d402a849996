package cart

import (
	"context"
	"io"
	"testing"

	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
	pkgerrors "github.com/emoorm/storefront/pkg/errors"
	"github.com/emoorm/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

type stubCatalog struct {
	products map[string]catalog.Product
}

func (s *stubCatalog) Lookup(ctx context.Context, id string) (catalog.Product, bool, error) {
	product, ok := s.products[id]
	return product, ok, nil
}

func testCatalog() *stubCatalog {
	return &stubCatalog{products: map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Wild Honey", Price: decimal.NewFromInt(350), Active: true},
		"p2": {ID: "p2", Name: "Banana Chips", Price: decimal.NewFromInt(100), Active: true},
	}}
}

func testService(t *testing.T) (Service, *clientstate.MemoryKV, *stubCatalog) {
	t.Helper()
	kv := clientstate.NewMemoryKV()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	state, err := clientstate.NewStore(kv, logg)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	cat := testCatalog()
	svc, err := NewService(ServiceParams{State: state, Catalog: cat})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc, kv, cat
}

func TestAddCreatesThenIncrements(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	lines, err := svc.Add(ctx, "dev-1", "p1")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("unexpected lines %v", lines)
	}

	lines, err = svc.Add(ctx, "dev-1", "p1")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity incremented, got %d", lines[0].Quantity)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _, _ := testService(t)

	_, err := svc.Add(context.Background(), "dev-1", "missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	lines, err := svc.UpdateQuantity(ctx, "dev-1", "p1", 0)
	if err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("expected decrement below 1 ignored, got %d", lines[0].Quantity)
	}

	lines, err = svc.UpdateQuantity(ctx, "dev-1", "p1", 5)
	if err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestRemoveDeletesLine(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add(ctx, "dev-1", "p2"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	lines, err := svc.Remove(ctx, "dev-1", "p1")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestViewTotalsWithFlatShipping(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, "dev-1", "p1", 2); err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}

	view, err := svc.View(ctx, "dev-1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if !view.Subtotal.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("unexpected subtotal %s", view.Subtotal)
	}
	if !view.Shipping.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected shipping %s", view.Shipping)
	}
	if !view.Total.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("unexpected total %s", view.Total)
	}
}

func TestViewEmptyCartHasNoShipping(t *testing.T) {
	svc, _, _ := testService(t)

	view, err := svc.View(context.Background(), "dev-1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if !view.Shipping.IsZero() || !view.Total.IsZero() {
		t.Fatalf("expected zero totals, got shipping %s total %s", view.Shipping, view.Total)
	}
}

func TestViewDropsUnresolvableLinesButKeepsStorage(t *testing.T) {
	svc, _, cat := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add(ctx, "dev-1", "p2"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	// The product disappears from the catalog after it was carted.
	delete(cat.products, "p1")

	view, err := svc.View(ctx, "dev-1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Product.ID != "p2" {
		t.Fatalf("expected only the resolvable line rendered, got %v", view.Items)
	}

	lines, err := svc.Lines(ctx, "dev-1")
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected storage untouched, got %v", lines)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := svc.Clear(ctx, "dev-1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	lines, err := svc.Lines(ctx, "dev-1")
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %v", lines)
	}
}
