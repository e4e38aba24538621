// Package core defines the capability interfaces, call options and version
// constants shared by the esb builders.
package core

// QueryCapable is the query-context capability: a boolean clause tree
// accumulated through chained calls and rendered on demand.
type QueryCapable interface {
	// Query appends an AND clause to the query tree
	Query(kind, field string, value any, opts ...Option) QueryCapable

	// AndQuery is an alias for Query
	AndQuery(kind, field string, value any, opts ...Option) QueryCapable

	// OrQuery appends a SHOULD clause to the query tree
	OrQuery(kind, field string, value any, opts ...Option) QueryCapable

	// NotQuery appends a MUST NOT clause to the query tree
	NotQuery(kind, field string, value any, opts ...Option) QueryCapable

	// QueryMinimumShouldMatch sets the minimum_should_match value rendered
	// when more than one SHOULD clause exists
	QueryMinimumShouldMatch(value any) QueryCapable

	// GetQuery returns the rendered query tree, or an empty map if untouched
	GetQuery() map[string]any

	// HasQuery reports whether any query clause has accumulated
	HasQuery() bool
}

// FilterCapable is the filter-context capability, mirroring QueryCapable
// for clauses rendered under a filter position.
type FilterCapable interface {
	// Filter appends an AND clause to the filter tree
	Filter(kind, field string, value any, opts ...Option) FilterCapable

	// AndFilter is an alias for Filter
	AndFilter(kind, field string, value any, opts ...Option) FilterCapable

	// OrFilter appends a SHOULD clause to the filter tree
	OrFilter(kind, field string, value any, opts ...Option) FilterCapable

	// NotFilter appends a MUST NOT clause to the filter tree
	NotFilter(kind, field string, value any, opts ...Option) FilterCapable

	// FilterMinimumShouldMatch sets the minimum_should_match value rendered
	// when more than one SHOULD clause exists
	FilterMinimumShouldMatch(value any) FilterCapable

	// GetFilter returns the rendered filter tree, or an empty map if untouched
	GetFilter() map[string]any

	// HasFilter reports whether any filter clause has accumulated
	HasFilter() bool
}

// AggregationCapable is the aggregation capability: a name-keyed clause map
// supporting flat and nested aggregations.
type AggregationCapable interface {
	// Aggregation stores a clause under the supplied or derived name,
	// overwriting any prior entry with the same name
	Aggregation(kind, field string, opts ...Option) AggregationCapable

	// Agg is an alias for Aggregation
	Agg(kind, field string, opts ...Option) AggregationCapable

	// GetAggregations returns the live aggregation map; callers must not
	// assume immutability
	GetAggregations() map[string]any

	// HasAggregations reports whether any aggregation has accumulated
	HasAggregations() bool
}

// QueryFilter is the capability union a nested clause callback receives.
type QueryFilter interface {
	QueryCapable
	FilterCapable
}

// FilterAggregator is the capability union a nested aggregation callback
// receives.
type FilterAggregator interface {
	FilterCapable
	AggregationCapable
}

// DocumentSource is the read side of the collaborator contract: the
// accessor pairs the top-level build step consumes.
type DocumentSource interface {
	GetQuery() map[string]any
	HasQuery() bool
	GetFilter() map[string]any
	HasFilter() bool
	GetAggregations() map[string]any
	HasAggregations() bool
}
