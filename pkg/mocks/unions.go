package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/searchforge/esb/pkg/core"
)

// MockQueryFilter is a mock implementation of the core.QueryFilter
// union, for testing code that receives the nested clause callback
// argument.
type MockQueryFilter struct {
	mock.Mock
}

// Query appends an AND clause to the query tree
func (m *MockQueryFilter) Query(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// AndQuery is an alias for Query
func (m *MockQueryFilter) AndQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// OrQuery appends a SHOULD clause to the query tree
func (m *MockQueryFilter) OrQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// NotQuery appends a MUST NOT clause to the query tree
func (m *MockQueryFilter) NotQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// QueryMinimumShouldMatch sets the minimum_should_match value
func (m *MockQueryFilter) QueryMinimumShouldMatch(value any) core.QueryCapable {
	args := m.Called(value)
	return args.Get(0).(core.QueryCapable)
}

// GetQuery returns the rendered query tree
func (m *MockQueryFilter) GetQuery() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasQuery reports whether any query clause has accumulated
func (m *MockQueryFilter) HasQuery() bool {
	args := m.Called()
	return args.Bool(0)
}

// Filter appends an AND clause to the filter tree
func (m *MockQueryFilter) Filter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// AndFilter is an alias for Filter
func (m *MockQueryFilter) AndFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// OrFilter appends a SHOULD clause to the filter tree
func (m *MockQueryFilter) OrFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// NotFilter appends a MUST NOT clause to the filter tree
func (m *MockQueryFilter) NotFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// FilterMinimumShouldMatch sets the minimum_should_match value
func (m *MockQueryFilter) FilterMinimumShouldMatch(value any) core.FilterCapable {
	args := m.Called(value)
	return args.Get(0).(core.FilterCapable)
}

// GetFilter returns the rendered filter tree
func (m *MockQueryFilter) GetFilter() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasFilter reports whether any filter clause has accumulated
func (m *MockQueryFilter) HasFilter() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockFilterAggregator is a mock implementation of the
// core.FilterAggregator union, for testing code that receives the
// nested aggregation callback argument.
type MockFilterAggregator struct {
	mock.Mock
}

// Filter appends an AND clause to the filter tree
func (m *MockFilterAggregator) Filter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// AndFilter is an alias for Filter
func (m *MockFilterAggregator) AndFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// OrFilter appends a SHOULD clause to the filter tree
func (m *MockFilterAggregator) OrFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// NotFilter appends a MUST NOT clause to the filter tree
func (m *MockFilterAggregator) NotFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// FilterMinimumShouldMatch sets the minimum_should_match value
func (m *MockFilterAggregator) FilterMinimumShouldMatch(value any) core.FilterCapable {
	args := m.Called(value)
	return args.Get(0).(core.FilterCapable)
}

// GetFilter returns the rendered filter tree
func (m *MockFilterAggregator) GetFilter() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasFilter reports whether any filter clause has accumulated
func (m *MockFilterAggregator) HasFilter() bool {
	args := m.Called()
	return args.Bool(0)
}

// Aggregation stores a clause under the supplied or derived name
func (m *MockFilterAggregator) Aggregation(kind, field string, opts ...core.Option) core.AggregationCapable {
	args := m.Called(kind, field, opts)
	return args.Get(0).(core.AggregationCapable)
}

// Agg is an alias for Aggregation
func (m *MockFilterAggregator) Agg(kind, field string, opts ...core.Option) core.AggregationCapable {
	args := m.Called(kind, field, opts)
	return args.Get(0).(core.AggregationCapable)
}

// GetAggregations returns the aggregation map
func (m *MockFilterAggregator) GetAggregations() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasAggregations reports whether any aggregation has accumulated
func (m *MockFilterAggregator) HasAggregations() bool {
	args := m.Called()
	return args.Bool(0)
}

// Interface conformance checks
var (
	_ core.QueryFilter      = (*MockQueryFilter)(nil)
	_ core.FilterAggregator = (*MockFilterAggregator)(nil)
)
