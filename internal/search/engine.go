package search

import (
	"sort"
	"strings"

	"github.com/emoorm/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

const (
	// MaxPrice is the price slider ceiling; a cleared filter sits here.
	MaxPrice = 15000

	suggestionLimit     = 5
	recommendationLimit = 6
	recommendationTerms = 2
	dealLimit           = 8
)

// FilterState holds the active storefront filters. The zero value matches
// everything.
type FilterState struct {
	Categories []string
	Brands     []string
	MaxPrice   decimal.Decimal
	Query      string
}

// Filter returns the products passing every active predicate. Inactive
// products are always excluded, even if an upstream query leaked one.
func Filter(products []catalog.Product, state FilterState) []catalog.Product {
	categories := toSet(state.Categories)
	brands := toSet(state.Brands)
	query := strings.ToLower(state.Query)

	matched := make([]catalog.Product, 0, len(products))
	for _, product := range products {
		if !product.Active {
			continue
		}
		if len(categories) > 0 {
			if _, ok := categories[product.Category]; !ok {
				continue
			}
		}
		if len(brands) > 0 {
			if _, ok := brands[product.Brand]; !ok {
				continue
			}
		}
		if !state.MaxPrice.IsZero() && product.Price.GreaterThan(state.MaxPrice) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(product.Name), query) &&
			!strings.Contains(strings.ToLower(product.Description), query) {
			continue
		}
		matched = append(matched, product)
	}
	return matched
}

// Suggest returns up to five products whose names contain the query,
// in catalog order.
func Suggest(products []catalog.Product, query string) []catalog.Product {
	if query == "" {
		return []catalog.Product{}
	}
	lowered := strings.ToLower(query)
	matches := make([]catalog.Product, 0, suggestionLimit)
	for _, product := range products {
		if !product.Active {
			continue
		}
		if strings.Contains(strings.ToLower(product.Name), lowered) {
			matches = append(matches, product)
			if len(matches) == suggestionLimit {
				break
			}
		}
	}
	return matches
}

// Recommend builds up to six picks from the two most recent search terms:
// products in any category matched by a term, then popularity-ordered padding
// when the terms alone cannot fill the slots.
func Recommend(products []catalog.Product, history []string) []catalog.Product {
	if len(history) == 0 {
		return []catalog.Product{}
	}

	recommendations := make([]catalog.Product, 0, recommendationLimit)
	added := make(map[string]struct{}, recommendationLimit)

	terms := history
	if len(terms) > recommendationTerms {
		terms = terms[:recommendationTerms]
	}

	for _, term := range terms {
		lowered := strings.ToLower(term)

		matchingCategories := map[string]struct{}{}
		for _, product := range products {
			if strings.Contains(strings.ToLower(product.Name), lowered) {
				matchingCategories[product.Category] = struct{}{}
			}
		}

		for _, product := range products {
			if len(recommendations) >= recommendationLimit {
				break
			}
			if !product.Active {
				continue
			}
			if _, ok := matchingCategories[product.Category]; !ok {
				continue
			}
			if _, seen := added[product.ID]; seen {
				continue
			}
			recommendations = append(recommendations, product)
			added[product.ID] = struct{}{}
		}
	}

	if len(recommendations) < recommendationLimit {
		for _, product := range SortByPopularity(products) {
			if len(recommendations) >= recommendationLimit {
				break
			}
			if !product.Active {
				continue
			}
			if _, seen := added[product.ID]; seen {
				continue
			}
			recommendations = append(recommendations, product)
			added[product.ID] = struct{}{}
		}
	}

	return recommendations
}

// Deals returns up to eight on-sale products in catalog order.
func Deals(products []catalog.Product) []catalog.Product {
	deals := make([]catalog.Product, 0, dealLimit)
	for _, product := range products {
		if !product.Active || !product.OnSale {
			continue
		}
		deals = append(deals, product)
		if len(deals) == dealLimit {
			break
		}
	}
	return deals
}

// SortByNewest returns a copy ordered newest first. Ties keep catalog order.
func SortByNewest(products []catalog.Product) []catalog.Product {
	sorted := append([]catalog.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateAdded.After(sorted[j].DateAdded)
	})
	return sorted
}

// SortByPopularity returns a copy ordered most popular first. Ties keep
// catalog order.
func SortByPopularity(products []catalog.Product) []catalog.Product {
	sorted := append([]catalog.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})
	return sorted
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
