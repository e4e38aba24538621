package query

import "github.com/searchforge/esb/pkg/core"

// Sub is the child builder a nested clause callback receives: query and
// filter capability over accumulators independent of every other builder.
type Sub struct {
	*QueryBuilder
	*FilterBuilder
}

// NewSub creates a child builder with fresh empty accumulators
func NewSub() *Sub {
	return &Sub{
		QueryBuilder:  NewQueryBuilder(),
		FilterBuilder: NewFilterBuilder(),
	}
}

var _ core.QueryFilter = (*Sub)(nil)
