package query

import "github.com/searchforge/esb/pkg/core"

// FilterBuilder accumulates filter-context clauses. Same machinery as
// QueryBuilder; the trees differ only in where the caller attaches them.
type FilterBuilder struct {
	tree boolTree
}

// NewFilterBuilder creates an empty filter accumulator
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// Filter appends an AND clause to the filter tree
func (f *FilterBuilder) Filter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	f.tree.push(&f.tree.and, kind, field, value, opts)
	return f
}

// AndFilter is an alias for Filter
func (f *FilterBuilder) AndFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	return f.Filter(kind, field, value, opts...)
}

// OrFilter appends a SHOULD clause to the filter tree
func (f *FilterBuilder) OrFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	f.tree.push(&f.tree.or, kind, field, value, opts)
	return f
}

// NotFilter appends a MUST NOT clause to the filter tree
func (f *FilterBuilder) NotFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	f.tree.push(&f.tree.not, kind, field, value, opts)
	return f
}

// FilterMinimumShouldMatch sets the minimum_should_match value; it renders
// only when more than one SHOULD clause exists
func (f *FilterBuilder) FilterMinimumShouldMatch(value any) core.FilterCapable {
	f.tree.minimumShouldMatch = value
	return f
}

// GetFilter returns the rendered filter tree, or an empty map if untouched
func (f *FilterBuilder) GetFilter() map[string]any {
	return f.tree.render()
}

// HasFilter reports whether any filter clause has accumulated
func (f *FilterBuilder) HasFilter() bool {
	return !f.tree.empty()
}

// Clone returns an independent copy of the accumulator
func (f *FilterBuilder) Clone() *FilterBuilder {
	return &FilterBuilder{tree: f.tree.clone()}
}

var _ core.FilterCapable = (*FilterBuilder)(nil)
