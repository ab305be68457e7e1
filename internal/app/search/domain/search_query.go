package domain

import "strings"

// Sort defaults applied when a query carries no usable sort input.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"

	DefaultSortField = "position"
	DefaultPageSize  = 20
)

// allowedSortFields is the allow-list of legal physical sort fields.
var allowedSortFields = map[string]bool{
	"position": true,
	"name":     true,
	"price":    true,
	"weight":   true,
	"quantity": true,
	"date_add": true,
}

// ValidateSortField returns field when it is a legal sort field, otherwise
// the position default. Never an error.
func ValidateSortField(field string) string {
	if allowedSortFields[field] {
		return field
	}
	return DefaultSortField
}

// ValidateSortDirection normalizes dir to ASC or DESC, falling back to ASC
// for anything unrecognized.
func ValidateSortDirection(dir string) string {
	if strings.EqualFold(dir, SortDesc) {
		return SortDesc
	}
	return SortAsc
}

// ProductSearchQuery is the validated, immutable input to a single search:
// pagination, sorting, and an optional category context.
type ProductSearchQuery struct {
	Page       int64
	PageSize   int64
	SortField  string
	SortDir    string
	CategoryID int64
}

// NewProductSearchQuery normalizes raw paging and sort input. Page numbers
// below 1 clamp to 1 so offsets never go negative; a non-positive page
// size falls back to the default.
func NewProductSearchQuery(page, pageSize int64, sortField, sortDir string, categoryID int64) ProductSearchQuery {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ProductSearchQuery{
		Page:       page,
		PageSize:   pageSize,
		SortField:  ValidateSortField(sortField),
		SortDir:    ValidateSortDirection(sortDir),
		CategoryID: categoryID,
	}
}

// Offset is the row offset the page maps to.
func (q ProductSearchQuery) Offset() int64 {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.PageSize
}
