package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id int64, name, description, price, category string) *Product {
	t.Helper()
	m, err := ParseMoney(price)
	require.NoError(t, err)
	p, err := NewProduct(id, name, description, m, "", category, 5)
	require.NoError(t, err)
	return p
}

func ids(products []*Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID())
	}
	return out
}

func testCatalog(t *testing.T) []*Product {
	return []*Product{
		mustProduct(t, 1, "Wireless Headphones", "Noise cancellation and long battery life.", "99.99", "Electronics"),
		mustProduct(t, 2, "Casual T-Shirt", "100% cotton casual t-shirt.", "24.99", "Clothing"),
		mustProduct(t, 3, "Novel - The Great Journey", "A bestselling novel about adventure.", "18.95", "Books"),
		mustProduct(t, 4, "Coffee Maker", "Programmable coffee maker with thermal carafe.", "79.95", "Home & Kitchen"),
		mustProduct(t, 5, "Smartphone", "High-resolution CAMERA and fast processor.", "799.99", "Electronics"),
		mustProduct(t, 6, "Digital Camera", "4K video recording.", "649.99", "Electronics"),
	}
}

func TestApplyCatalogQuery_PriceSortIsStable(t *testing.T) {
	catalog := []*Product{
		mustProduct(t, 1, "One", "", "50", "X"),
		mustProduct(t, 2, "Two", "", "20", "X"),
		mustProduct(t, 3, "Three", "", "20", "X"),
	}

	asc := ApplyCatalogQuery(catalog, CatalogQuerySpec{Category: AllCategories, Sort: SortPriceAsc})
	assert.Equal(t, []int64{2, 3, 1}, ids(asc))

	desc := ApplyCatalogQuery(catalog, CatalogQuerySpec{Category: AllCategories, Sort: SortPriceDesc})
	assert.Equal(t, []int64{1, 2, 3}, ids(desc))
}

func TestApplyCatalogQuery_NameSort(t *testing.T) {
	catalog := []*Product{
		mustProduct(t, 1, "banana", "", "1", "X"),
		mustProduct(t, 2, "Apple", "", "1", "X"),
		mustProduct(t, 3, "cherry", "", "1", "X"),
		mustProduct(t, 4, "apple", "", "2", "X"),
		mustProduct(t, 5, "Éclair", "", "1", "X"),
	}

	asc := ApplyCatalogQuery(catalog, CatalogQuerySpec{Sort: SortNameAsc})
	desc := ApplyCatalogQuery(catalog, CatalogQuerySpec{Sort: SortNameDesc})

	// collation sorts accented and mixed-case names alphabetically, not by code point
	ascIDs := ids(asc)
	assert.Equal(t, int64(1), ascIDs[2])
	assert.Equal(t, int64(3), ascIDs[3])
	assert.Equal(t, int64(5), ascIDs[4])
	assert.ElementsMatch(t, []int64{2, 4}, ascIDs[:2])

	descIDs := ids(desc)
	assert.Equal(t, []int64{5, 3, 1}, descIDs[:3])
	assert.ElementsMatch(t, []int64{2, 4}, descIDs[3:])
}

func TestApplyCatalogQuery_NameSortTiesKeepOrder(t *testing.T) {
	catalog := []*Product{
		mustProduct(t, 1, "Lamp", "", "3", "X"),
		mustProduct(t, 2, "Desk", "", "1", "X"),
		mustProduct(t, 3, "Lamp", "", "2", "X"),
	}

	asc := ApplyCatalogQuery(catalog, CatalogQuerySpec{Sort: SortNameAsc})
	assert.Equal(t, []int64{2, 1, 3}, ids(asc))

	desc := ApplyCatalogQuery(catalog, CatalogQuerySpec{Sort: SortNameDesc})
	assert.Equal(t, []int64{1, 3, 2}, ids(desc))
}

func TestApplyCatalogQuery_Filters(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		name string
		spec CatalogQuerySpec
		want []int64
	}{
		{
			name: "all categories featured keeps catalog order",
			spec: CatalogQuerySpec{Category: AllCategories, Sort: SortFeatured},
			want: []int64{1, 2, 3, 4, 5, 6},
		},
		{
			name: "category is exact",
			spec: CatalogQuerySpec{Category: "Electronics"},
			want: []int64{1, 5, 6},
		},
		{
			name: "category is case sensitive",
			spec: CatalogQuerySpec{Category: "electronics"},
			want: []int64{},
		},
		{
			name: "search matches name case-insensitively",
			spec: CatalogQuerySpec{Query: "COFFEE"},
			want: []int64{4},
		},
		{
			name: "search matches description",
			spec: CatalogQuerySpec{Query: "camera"},
			want: []int64{5, 6},
		},
		{
			name: "price range is inclusive",
			spec: CatalogQuerySpec{PriceMin: MustMoney(1895, 100), PriceMax: MustMoney(7995, 100)},
			want: []int64{2, 3, 4},
		},
		{
			name: "min greater than max is empty",
			spec: CatalogQuerySpec{PriceMin: MustMoney(100, 1), PriceMax: MustMoney(10, 1)},
			want: []int64{},
		},
		{
			name: "stages combine",
			spec: CatalogQuerySpec{
				Category: "Electronics",
				Query:    "a",
				PriceMax: MustMoney(700, 1),
				Sort:     SortPriceDesc,
			},
			want: []int64{6, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyCatalogQuery(catalog, tt.spec)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyCatalogQuery_DefaultSpecCapsAt1000(t *testing.T) {
	catalog := append(testCatalog(t),
		mustProduct(t, 7, "Espresso Machine", "Dual boiler.", "1000", "Home & Kitchen"),
		mustProduct(t, 8, "Laptop", "Workstation class.", "1000.01", "Electronics"),
	)

	got := ApplyCatalogQuery(catalog, DefaultCatalogQuerySpec())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, ids(got))
}

func TestApplyCatalogQuery_WhitespaceQueryIsASearch(t *testing.T) {
	catalog := []*Product{
		mustProduct(t, 1, "Smartphone", "", "1", "X"),
		mustProduct(t, 2, "Coffee Maker", "", "1", "X"),
	}

	got := ApplyCatalogQuery(catalog, CatalogQuerySpec{Query: " "})
	assert.Equal(t, []int64{2}, ids(got))
}

func TestApplyCatalogQuery_EmptyInput(t *testing.T) {
	got := ApplyCatalogQuery(nil, CatalogQuerySpec{Query: "x", Sort: SortNameAsc})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyCatalogQuery_IsPure(t *testing.T) {
	catalog := testCatalog(t)
	before := ids(catalog)
	spec := CatalogQuerySpec{Category: AllCategories, Sort: SortPriceAsc}

	first := ApplyCatalogQuery(catalog, spec)
	second := ApplyCatalogQuery(catalog, spec)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, before, ids(catalog))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortFeatured, key)

	key, err = ParseSortKey("name-desc")
	require.NoError(t, err)
	assert.Equal(t, SortNameDesc, key)

	_, err = ParseSortKey("rating")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestListCategories(t *testing.T) {
	got := ListCategories(testCatalog(t))
	assert.Equal(t, []string{"All", "Electronics", "Clothing", "Books", "Home & Kitchen"}, got)
	assert.Equal(t, []string{"All"}, ListCategories(nil))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Electronics", NormalizeCategory("electronics"))
	assert.Equal(t, "Books", NormalizeCategory("Books"))
	assert.Equal(t, "", NormalizeCategory(" "))
}
