package search

import (
	"testing"
	"time"

	"github.com/emoorm/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

func product(id, name, category, brand string, price int64, popularity float64) catalog.Product {
	return catalog.Product{
		ID:         id,
		Name:       name,
		Category:   category,
		Brand:      brand,
		Price:      decimal.NewFromInt(price),
		Popularity: popularity,
		Active:     true,
	}
}

func sampleCatalog() []catalog.Product {
	return []catalog.Product{
		product("1", "Fresh Calamansi", "Fresh Produce", "Mindoro Harvest", 80, 0.8),
		product("2", "Wild Honey", "Local Delicacies", "Mangyan Treasures", 350, 0.9),
		product("3", "Nito Basket", "Handicrafts", "Mangyan Treasures", 550, 0.4),
		product("4", "Dried Fish", "Local Delicacies", "Mindoro Harvest", 150, 0.6),
		product("5", "Banana Chips", "Local Delicacies", "Naujan Farms", 100, 0.7),
		product("6", "Fresh Mangoes", "Fresh Produce", "Mindoro Harvest", 180, 0.5),
		product("7", "Buri Palm Bag", "Handicrafts", "Mangyan Treasures", 450, 0.3),
		product("8", "Tablea Cacao", "Local Delicacies", "Naujan Farms", 200, 0.2),
	}
}

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []catalog.Product, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterClearedStateReturnsEverythingActive(t *testing.T) {
	products := sampleCatalog()
	products[2].Active = false

	got := Filter(products, FilterState{})

	if len(got) != len(products)-1 {
		t.Fatalf("expected %d products, got %d", len(products)-1, len(got))
	}
	for _, p := range got {
		if p.ID == "3" {
			t.Fatal("inactive product leaked through the filter")
		}
	}
}

func TestFilterPredicatesAreConjunctive(t *testing.T) {
	got := Filter(sampleCatalog(), FilterState{
		Categories: []string{"Local Delicacies"},
		Brands:     []string{"Mindoro Harvest"},
		MaxPrice:   decimal.NewFromInt(200),
	})

	assertIDs(t, got, "4")
}

func TestFilterQueryMatchesNameOrDescription(t *testing.T) {
	products := sampleCatalog()
	products[7].Description = "Traditional hot chocolate balls."

	got := Filter(products, FilterState{Query: "CHOCOLATE"})

	assertIDs(t, got, "8")
}

func TestFilterPriceCeiling(t *testing.T) {
	got := Filter(sampleCatalog(), FilterState{MaxPrice: decimal.NewFromInt(100)})

	assertIDs(t, got, "1", "5")
}

func TestSuggestCapsAtFiveInCatalogOrder(t *testing.T) {
	products := sampleCatalog()
	for i := range products {
		products[i].Name = "Mindoro " + products[i].Name
	}

	got := Suggest(products, "mindoro")

	assertIDs(t, got, "1", "2", "3", "4", "5")
}

func TestSuggestEmptyQuery(t *testing.T) {
	if got := Suggest(sampleCatalog(), ""); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %d", len(got))
	}
}

func TestRecommendUsesCategoriesOfRecentTerms(t *testing.T) {
	got := Recommend(sampleCatalog(), []string{"honey"})

	// "honey" matches Wild Honey, so every Local Delicacies product joins in
	// catalog order, then popularity padding fills the remaining slots.
	if len(got) != 6 {
		t.Fatalf("expected 6 recommendations, got %d", len(got))
	}
	assertIDs(t, got[:4], "2", "4", "5", "8")
	// Padding: most popular products not yet added.
	assertIDs(t, got[4:], "1", "6")
}

func TestRecommendOnlyUsesTwoMostRecentTerms(t *testing.T) {
	products := sampleCatalog()

	// Third term would match Handicrafts; it must be ignored.
	got := Recommend(products, []string{"calamansi", "mango", "basket"})

	for _, p := range got[:2] {
		if p.Category != "Fresh Produce" {
			t.Fatalf("expected Fresh Produce first, got %q in %v", p.Category, ids(got))
		}
	}
}

func TestRecommendEmptyHistory(t *testing.T) {
	if got := Recommend(sampleCatalog(), nil); len(got) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(got))
	}
}

func TestDealsCapsAtEight(t *testing.T) {
	products := sampleCatalog()
	for i := range products {
		products[i].OnSale = true
	}
	extra := product("9", "Tamarind Candy", "Local Delicacies", "Naujan Farms", 70, 0.1)
	extra.OnSale = true
	products = append(products, extra)

	got := Deals(products)

	if len(got) != 8 {
		t.Fatalf("expected deal cap 8, got %d", len(got))
	}
	assertIDs(t, got, "1", "2", "3", "4", "5", "6", "7", "8")
}

func TestSortByNewestIsStable(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := sampleCatalog()
	products[0].DateAdded = base.Add(2 * time.Hour)
	products[1].DateAdded = base.Add(time.Hour)
	products[2].DateAdded = base.Add(time.Hour)

	got := SortByNewest(products)

	assertIDs(t, got[:3], "1", "2", "3")
	// Undated seed entries keep their relative order at the tail.
	assertIDs(t, got[3:], "4", "5", "6", "7", "8")
}

func TestSortByPopularityDoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()

	got := SortByPopularity(products)

	if got[0].ID != "2" {
		t.Fatalf("expected most popular first, got %v", ids(got))
	}
	if products[0].ID != "1" {
		t.Fatal("input slice was reordered")
	}
}
