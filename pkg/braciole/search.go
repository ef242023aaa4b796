package braciole

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchIndex ranks entered text against a catalog of place names. The
// gadget has no network-side search; the catalog ships with the binary and
// submit simply surfaces the closest matches on the search screen.
type SearchIndex struct {
	catalog []string
}

// defaultCatalog covers the towns the gadget is likely to be asked about.
var defaultCatalog = []string{
	"Mallow", "Cork", "Dublin", "Galway", "Limerick", "Waterford",
	"Kilkenny", "Killarney", "Tralee", "Ennis", "Sligo", "Athlone",
	"Drogheda", "Dundalk", "Wexford", "Carlow", "Naas", "Navan",
	"Mullingar", "Tullamore", "Portlaoise", "Clonmel", "Thurles",
	"Fermoy", "Midleton", "Youghal", "Bantry", "Kinsale", "Cobh",
	"Macroom", "Skibbereen", "Clonakilty", "Letterkenny", "Donegal",
	"Westport", "Castlebar", "Ballina", "Roscommon", "Cavan", "Monaghan",
}

// NewSearchIndex builds an index over the default catalog.
func NewSearchIndex() *SearchIndex {
	return &SearchIndex{catalog: defaultCatalog}
}

// NewSearchIndexWithCatalog builds an index over a custom catalog.
func NewSearchIndexWithCatalog(catalog []string) *SearchIndex {
	return &SearchIndex{catalog: catalog}
}

// Rank returns up to limit catalog entries matching query, best first.
// An empty or whitespace query returns nil.
func (s *SearchIndex) Rank(query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(query, s.catalog)
	sort.Sort(ranks)

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	matches := make([]string, len(ranks))
	for i, r := range ranks {
		matches[i] = r.Target
	}
	return matches
}
