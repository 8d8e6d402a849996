package wishlist

import (
	"context"
	"io"
	"testing"

	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
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

func testService(t *testing.T) (Service, *stubCatalog) {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	state, err := clientstate.NewStore(clientstate.NewMemoryKV(), logg)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	cat := &stubCatalog{products: map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Wild Honey", Price: decimal.NewFromInt(350), Active: true},
		"p2": {ID: "p2", Name: "Banana Chips", Price: decimal.NewFromInt(100), Active: true},
		"p3": {ID: "p3", Name: "Nito Basket", Price: decimal.NewFromInt(550), Active: true},
	}}
	svc, err := NewService(ServiceParams{State: state, Catalog: cat})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc, cat
}

func TestAddIsIdempotent(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	ids, err := svc.Add(ctx, "dev-1", "p1")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected set semantics, got %v", ids)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	ids, err := svc.Remove(ctx, "dev-1", "p9")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "p1" {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestViewIsNewestFirstAndSkipsUnresolvable(t *testing.T) {
	svc, cat := testService(t)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		if _, err := svc.Add(ctx, "dev-1", id); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	delete(cat.products, "p2")

	products, err := svc.View(ctx, "dev-1")
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(products) != 2 || products[0].ID != "p3" || products[1].ID != "p1" {
		t.Fatalf("unexpected view order %v", products)
	}

	// Storage keeps the unresolvable id.
	ids, err := svc.IDs(ctx, "dev-1")
	if err != nil {
		t.Fatalf("IDs returned error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected storage untouched, got %v", ids)
	}
}

func TestContains(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "dev-1", "p1"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	ok, err := svc.Contains(ctx, "dev-1", "p1")
	if err != nil {
		t.Fatalf("Contains returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected p1 wishlisted")
	}

	ok, err = svc.Contains(ctx, "dev-1", "p2")
	if err != nil {
		t.Fatalf("Contains returned error: %v", err)
	}
	if ok {
		t.Fatal("expected p2 absent")
	}
}
