// Package esb provides a fluent builder for Elasticsearch query bodies
package esb

import (
	"fmt"

	"github.com/searchforge/esb/internal/clause"
	"github.com/searchforge/esb/pkg/aggs"
	"github.com/searchforge/esb/pkg/core"
	"github.com/searchforge/esb/pkg/marshal"
	"github.com/searchforge/esb/pkg/naming"
	"github.com/searchforge/esb/pkg/query"
)

// Dialect versions accepted by Build and WithVersion.
const (
	// Version1 produces the legacy filtered-query document shape
	Version1 = core.Version1

	// Version2 produces the modern bool-query document shape (default)
	Version2 = core.Version2
)

// GeoDistanceSort is the sort key that always appends a new entry
// instead of overwriting an existing one
const GeoDistanceSort = naming.GeoDistanceSort

// Call options shared by every clause-adding method. Re-exported from
// pkg/core so callers only need this package.
var (
	// WithName overrides the generated aggregation name
	WithName = core.WithName

	// WithOptions merges extra key/value pairs into the clause body
	WithOptions = core.WithOptions

	// WithSubQuery nests a query/filter block inside the clause
	WithSubQuery = core.WithSubQuery

	// WithSubAggregation nests filters and sub-aggregations inside an
	// aggregation
	WithSubAggregation = core.WithSubAggregation
)

// Builder is the main query body builder. It accumulates queries,
// filters, aggregations, sorting and paging, and assembles them into a
// single document with Build.
type Builder struct {
	body         map[string]any
	version      core.Version
	queries      *query.QueryBuilder
	filters      *query.FilterBuilder
	aggregations *aggs.AggregationBuilder
}

// Option configures a Builder at construction time
type Option func(*Builder)

// WithVersion sets the dialect Build uses when called without an
// explicit version
func WithVersion(v core.Version) Option {
	return func(b *Builder) {
		b.version = v
	}
}

// New creates an empty Builder producing the modern bool-query dialect
// unless configured otherwise
func New(opts ...Option) *Builder {
	b := &Builder{
		body:         make(map[string]any),
		version:      core.Version2,
		queries:      query.NewQueryBuilder(),
		filters:      query.NewFilterBuilder(),
		aggregations: aggs.NewAggregationBuilder(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Query adds an AND query clause
func (b *Builder) Query(kind, field string, value any, opts ...core.Option) *Builder {
	b.queries.Query(kind, field, value, opts...)
	return b
}

// AndQuery is an alias for Query
func (b *Builder) AndQuery(kind, field string, value any, opts ...core.Option) *Builder {
	return b.Query(kind, field, value, opts...)
}

// OrQuery adds a SHOULD query clause
func (b *Builder) OrQuery(kind, field string, value any, opts ...core.Option) *Builder {
	b.queries.OrQuery(kind, field, value, opts...)
	return b
}

// NotQuery adds a MUST NOT query clause
func (b *Builder) NotQuery(kind, field string, value any, opts ...core.Option) *Builder {
	b.queries.NotQuery(kind, field, value, opts...)
	return b
}

// QueryMinimumShouldMatch sets minimum_should_match on the query tree
func (b *Builder) QueryMinimumShouldMatch(value any) *Builder {
	b.queries.QueryMinimumShouldMatch(value)
	return b
}

// Filter adds an AND filter clause
func (b *Builder) Filter(kind, field string, value any, opts ...core.Option) *Builder {
	b.filters.Filter(kind, field, value, opts...)
	return b
}

// AndFilter is an alias for Filter
func (b *Builder) AndFilter(kind, field string, value any, opts ...core.Option) *Builder {
	return b.Filter(kind, field, value, opts...)
}

// OrFilter adds a SHOULD filter clause
func (b *Builder) OrFilter(kind, field string, value any, opts ...core.Option) *Builder {
	b.filters.OrFilter(kind, field, value, opts...)
	return b
}

// NotFilter adds a MUST NOT filter clause
func (b *Builder) NotFilter(kind, field string, value any, opts ...core.Option) *Builder {
	b.filters.NotFilter(kind, field, value, opts...)
	return b
}

// FilterMinimumShouldMatch sets minimum_should_match on the filter tree
func (b *Builder) FilterMinimumShouldMatch(value any) *Builder {
	b.filters.FilterMinimumShouldMatch(value)
	return b
}

// Aggregation adds an aggregation. Without WithName the aggregation is
// named agg_<kind>_<field>.
func (b *Builder) Aggregation(kind, field string, opts ...core.Option) *Builder {
	b.aggregations.Aggregation(kind, field, opts...)
	return b
}

// Agg is an alias for Aggregation
func (b *Builder) Agg(kind, field string, opts ...core.Option) *Builder {
	return b.Aggregation(kind, field, opts...)
}

// GetQuery returns the rendered query tree
func (b *Builder) GetQuery() map[string]any {
	return b.queries.GetQuery()
}

// HasQuery reports whether any query clause has accumulated
func (b *Builder) HasQuery() bool {
	return b.queries.HasQuery()
}

// GetFilter returns the rendered filter tree
func (b *Builder) GetFilter() map[string]any {
	return b.filters.GetFilter()
}

// HasFilter reports whether any filter clause has accumulated
func (b *Builder) HasFilter() bool {
	return b.filters.HasFilter()
}

// GetAggregations returns the accumulated aggregations. The returned
// map is live; Build attaches a deep copy.
func (b *Builder) GetAggregations() map[string]any {
	return b.aggregations.GetAggregations()
}

// HasAggregations reports whether any aggregation has accumulated
func (b *Builder) HasAggregations() bool {
	return b.aggregations.HasAggregations()
}

// Clone returns a deep copy of the builder sharing no state with the
// original
func (b *Builder) Clone() *Builder {
	return &Builder{
		body:         clause.CloneMap(b.body),
		version:      b.version,
		queries:      b.queries.Clone(),
		filters:      b.filters.Clone(),
		aggregations: b.aggregations.Clone(),
	}
}

// MarshalJSON renders the built document, so a Builder can be embedded
// in request payloads directly
func (b *Builder) MarshalJSON() ([]byte, error) {
	return marshal.JSON(b.Build())
}

// String renders the built document as indented JSON
func (b *Builder) String() string {
	raw, err := marshal.Indent(b.Build())
	if err != nil {
		return fmt.Sprintf("%v", b.Build())
	}
	return string(raw)
}

var _ core.DocumentSource = (*Builder)(nil)
