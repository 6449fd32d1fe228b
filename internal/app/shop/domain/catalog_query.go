package domain

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories disables the category filter.
const AllCategories = "All"

// SortKey selects the ordering of a catalog query result.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey maps a request value to a SortKey. Empty means featured.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.TrimSpace(s)); key {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

// CatalogQuerySpec describes one product listing request.
// A nil PriceMin or PriceMax leaves that side of the range open.
type CatalogQuerySpec struct {
	Category string
	Query    string
	PriceMin *Money
	PriceMax *Money
	Sort     SortKey
}

// DefaultCatalogQuerySpec matches the listing page's initial state:
// all categories, no search, price range [0, 1000], featured order.
func DefaultCatalogQuerySpec() CatalogQuerySpec {
	return CatalogQuerySpec{
		Category: AllCategories,
		PriceMin: Zero(),
		PriceMax: MustMoney(1000, 1),
		Sort:     SortFeatured,
	}
}

// ApplyCatalogQuery filters and sorts products without mutating the input.
//
// Stages run in order: category, text search, price range, sort. Category is
// an exact, case-sensitive match. Search is a case-folded substring match on
// name or description. The price range is inclusive on both ends; min > max
// yields an empty result. Sorting is stable. Names are compared with English
// collation, prices exactly.
func ApplyCatalogQuery(products []*Product, spec CatalogQuerySpec) []*Product {
	result := make([]*Product, 0, len(products))

	var folder cases.Caser
	var needle string
	if spec.Query != "" {
		folder = cases.Fold()
		needle = folder.String(spec.Query)
	}

	for _, p := range products {
		if spec.Category != "" && spec.Category != AllCategories && p.category != spec.Category {
			continue
		}

		if needle != "" &&
			!strings.Contains(folder.String(p.name), needle) &&
			!strings.Contains(folder.String(p.description), needle) {
			continue
		}

		if spec.PriceMin != nil && p.price.LessThan(spec.PriceMin) {
			continue
		}
		if spec.PriceMax != nil && p.price.GreaterThan(spec.PriceMax) {
			continue
		}

		result = append(result, p)
	}

	sortProducts(result, spec.Sort)
	return result
}

func sortProducts(products []*Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return a.price.Cmp(b.price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return b.price.Cmp(a.price)
		})
	case SortNameAsc, SortNameDesc:
		// A Collator keeps internal buffers, so each call gets its own.
		col := collate.New(language.English)
		desc := key == SortNameDesc
		slices.SortStableFunc(products, func(a, b *Product) int {
			if desc {
				return col.CompareString(b.name, a.name)
			}
			return col.CompareString(a.name, b.name)
		})
	default:
		// featured keeps catalog order
	}
}

// ListCategories returns "All" followed by each distinct category in
// first-seen catalog order.
func ListCategories(products []*Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{})
	for _, p := range products {
		if _, ok := seen[p.category]; ok {
			continue
		}
		seen[p.category] = struct{}{}
		categories = append(categories, p.category)
	}
	return categories
}
