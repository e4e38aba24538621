package query

import "github.com/searchforge/esb/pkg/core"

// QueryBuilder accumulates query-context clauses into a boolean tree and
// renders them on demand. Fresh instances come from NewQueryBuilder; the
// zero value is also usable.
type QueryBuilder struct {
	tree boolTree
}

// NewQueryBuilder creates an empty query accumulator
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Query appends an AND clause to the query tree
func (q *QueryBuilder) Query(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	q.tree.push(&q.tree.and, kind, field, value, opts)
	return q
}

// AndQuery is an alias for Query
func (q *QueryBuilder) AndQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	return q.Query(kind, field, value, opts...)
}

// OrQuery appends a SHOULD clause to the query tree
func (q *QueryBuilder) OrQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	q.tree.push(&q.tree.or, kind, field, value, opts)
	return q
}

// NotQuery appends a MUST NOT clause to the query tree
func (q *QueryBuilder) NotQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	q.tree.push(&q.tree.not, kind, field, value, opts)
	return q
}

// QueryMinimumShouldMatch sets the minimum_should_match value; it renders
// only when more than one SHOULD clause exists
func (q *QueryBuilder) QueryMinimumShouldMatch(value any) core.QueryCapable {
	q.tree.minimumShouldMatch = value
	return q
}

// GetQuery returns the rendered query tree, or an empty map if untouched
func (q *QueryBuilder) GetQuery() map[string]any {
	return q.tree.render()
}

// HasQuery reports whether any query clause has accumulated
func (q *QueryBuilder) HasQuery() bool {
	return !q.tree.empty()
}

// Clone returns an independent copy of the accumulator
func (q *QueryBuilder) Clone() *QueryBuilder {
	return &QueryBuilder{tree: q.tree.clone()}
}

var _ core.QueryCapable = (*QueryBuilder)(nil)
