package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/queries/search_products"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/repo"
	"github.com/Hlavtox/ps-facetedsearch/internal/pkg/logger"
)

// SearchHandler handles HTTP requests for faceted product search.
type SearchHandler struct {
	search *search_products.Query
}

// NewSearchHandler creates a new HTTP search handler.
func NewSearchHandler(search *search_products.Query) *SearchHandler {
	return &SearchHandler{
		search: search,
	}
}

// productJSON is one product in the HTTP response.
type productJSON struct {
	IDProduct     int64   `json:"id_product"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ComputedPrice float64 `json:"computed_price"`
	Quantity      int64   `json:"quantity"`
	Condition     string  `json:"condition"`
	Weight        float64 `json:"weight"`
	Position      int64   `json:"position"`
}

// searchResponse is the HTTP response for a product search.
type searchResponse struct {
	Products []productJSON `json:"products"`
	Count    int64         `json:"count"`
}

// ServeHTTP handles GET /api/v1/search requests.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := parseSearchRequest(r.URL.Query())

	result, err := h.search.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := searchResponse{
		Products: make([]productJSON, 0, len(result.Products)),
		Count:    result.Count,
	}
	for _, p := range result.Products {
		resp.Products = append(resp.Products, productJSON(p))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Logger.Error().Err(err).Msg("failed to encode search response")
	}
}

// writeError maps search failures to HTTP status codes.
func (h *SearchHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var execErr *repo.QueryExecutionError
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		http.Error(w, "category not found", http.StatusNotFound)
	case errors.As(err, &execErr):
		logger.Logger.Error().
			Err(err).
			Str("op", execErr.Op).
			Str("request_id", RequestIDFromContext(r.Context())).
			Msg("search backend failure")
		http.Error(w, "search backend unavailable", http.StatusBadGateway)
	default:
		logger.Logger.Error().
			Err(err).
			Str("request_id", RequestIDFromContext(r.Context())).
			Msg("search failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
