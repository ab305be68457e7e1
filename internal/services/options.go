package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/composer"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/queries/search_products"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/repo"
	"github.com/Hlavtox/ps-facetedsearch/internal/config"
	"github.com/Hlavtox/ps-facetedsearch/internal/pkg/clock"
	httptransport "github.com/Hlavtox/ps-facetedsearch/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	SearchHandler *httptransport.SearchHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()

	searcher := repo.NewSpannerSearcher(spannerClient, clk)
	categories := repo.NewCategoryRepo(spannerClient)

	filterComposer := composer.New(cfg.Search, categories)
	searchQuery := search_products.NewQuery(filterComposer, searcher)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		SearchHandler: httptransport.NewSearchHandler(searchQuery),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
