package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/queries/search_products"
)

// Query parameter names. ID-list facets repeat the parameter per value;
// feature and attribute selections group values under "feature.<id>" and
// "attribute.<id>".
const (
	paramPage         = "page"
	paramPageSize     = "page_size"
	paramOrderBy      = "order_by"
	paramOrderWay     = "order_way"
	paramCategory     = "id_category"
	paramCategories   = "category"
	paramManufacturer = "manufacturer"
	paramCondition    = "condition"
	paramQuantity     = "quantity"
	paramPriceMin     = "price_min"
	paramPriceMax     = "price_max"
	paramWeightMin    = "weight_min"
	paramWeightMax    = "weight_max"

	featurePrefix   = "feature."
	attributePrefix = "attribute."
)

// parseSearchRequest builds a search request from URL query parameters.
// Malformed values are skipped, never rejected: an unparsable facet value
// simply adds no filter.
func parseSearchRequest(values url.Values) *search_products.Request {
	page := parseInt(values.Get(paramPage), 1)
	pageSize := parseInt(values.Get(paramPageSize), domain.DefaultPageSize)

	filters := domain.SelectedFilters{
		Categories:    parseIDs(values[paramCategories]),
		Manufacturers: parseIDs(values[paramManufacturer]),
		Conditions:    parseConditions(values[paramCondition]),
		Quantities:    parseStock(values[paramQuantity]),
		Features:      parseGrouped(values, featurePrefix),
		Attributes:    parseGrouped(values, attributePrefix),
		Weight:        parseRange(values.Get(paramWeightMin), values.Get(paramWeightMax)),
		Price:         parseRange(values.Get(paramPriceMin), values.Get(paramPriceMax)),
	}

	return &search_products.Request{
		Query: domain.NewProductSearchQuery(
			page,
			pageSize,
			values.Get(paramOrderBy),
			values.Get(paramOrderWay),
			parseInt(values.Get(paramCategory), 0),
		),
		Filters: filters,
	}
}

func parseInt(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func parseIDs(raw []string) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, value := range raw {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func parseConditions(raw []string) []domain.ProductCondition {
	conditions := make([]domain.ProductCondition, 0, len(raw))
	for _, value := range raw {
		code := domain.ProductCondition(value)
		if domain.KnownCondition(code) {
			conditions = append(conditions, code)
		}
	}
	return conditions
}

func parseStock(raw []string) []domain.StockStatus {
	statuses := make([]domain.StockStatus, 0, len(raw))
	for _, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 || n >= domain.StockStatusCount {
			continue
		}
		statuses = append(statuses, domain.StockStatus(n))
	}
	return statuses
}

// parseGrouped collects "<prefix><id>=value" parameters into an id-keyed
// value map, e.g. feature.3=5&feature.3=7 selects values 5 and 7 of
// feature 3.
func parseGrouped(values url.Values, prefix string) map[int64][]int64 {
	grouped := make(map[int64][]int64)
	for key, raw := range values {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		id, err := strconv.ParseInt(key[len(prefix):], 10, 64)
		if err != nil {
			continue
		}
		if ids := parseIDs(raw); len(ids) > 0 {
			grouped[id] = append(grouped[id], ids...)
		}
	}
	if len(grouped) == 0 {
		return nil
	}
	return grouped
}

func parseRange(minRaw, maxRaw string) *domain.Range {
	var r domain.Range
	if minRaw != "" {
		if f, err := strconv.ParseFloat(minRaw, 64); err == nil {
			r.Min = &f
		}
	}
	if maxRaw != "" {
		if f, err := strconv.ParseFloat(maxRaw, 64); err == nil {
			r.Max = &f
		}
	}
	if r.Empty() {
		return nil
	}
	return &r
}
