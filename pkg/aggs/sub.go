package aggs

import (
	"github.com/searchforge/esb/pkg/core"
	"github.com/searchforge/esb/pkg/query"
)

// Sub is the child builder a nested aggregation callback receives: filter
// and aggregation capability over accumulators independent of every other
// builder.
type Sub struct {
	*query.FilterBuilder
	*AggregationBuilder
}

// NewSub creates a child builder with fresh empty accumulators
func NewSub() *Sub {
	return &Sub{
		FilterBuilder:      query.NewFilterBuilder(),
		AggregationBuilder: NewAggregationBuilder(),
	}
}

var _ core.FilterAggregator = (*Sub)(nil)
