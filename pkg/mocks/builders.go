// Package mocks provides mock implementations of the esb capability
// interfaces. These mocks are designed to be used with
// github.com/stretchr/testify/mock for unit testing applications that
// compose search documents through esb.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/searchforge/esb/pkg/core"
)

// MockQueryCapable is a mock implementation of the core.QueryCapable
// interface.
//
// Example usage:
//
//	mockQuery := new(mocks.MockQueryCapable)
//	mockQuery.On("Query", "match", "title", "go", mock.Anything).Return(mockQuery)
//	mockQuery.On("HasQuery").Return(true)
type MockQueryCapable struct {
	mock.Mock
}

// Query appends an AND clause to the query tree
func (m *MockQueryCapable) Query(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// AndQuery is an alias for Query
func (m *MockQueryCapable) AndQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// OrQuery appends a SHOULD clause to the query tree
func (m *MockQueryCapable) OrQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// NotQuery appends a MUST NOT clause to the query tree
func (m *MockQueryCapable) NotQuery(kind, field string, value any, opts ...core.Option) core.QueryCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.QueryCapable)
}

// QueryMinimumShouldMatch sets the minimum_should_match value
func (m *MockQueryCapable) QueryMinimumShouldMatch(value any) core.QueryCapable {
	args := m.Called(value)
	return args.Get(0).(core.QueryCapable)
}

// GetQuery returns the rendered query tree
func (m *MockQueryCapable) GetQuery() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasQuery reports whether any query clause has accumulated
func (m *MockQueryCapable) HasQuery() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockFilterCapable is a mock implementation of the core.FilterCapable
// interface.
type MockFilterCapable struct {
	mock.Mock
}

// Filter appends an AND clause to the filter tree
func (m *MockFilterCapable) Filter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// AndFilter is an alias for Filter
func (m *MockFilterCapable) AndFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// OrFilter appends a SHOULD clause to the filter tree
func (m *MockFilterCapable) OrFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// NotFilter appends a MUST NOT clause to the filter tree
func (m *MockFilterCapable) NotFilter(kind, field string, value any, opts ...core.Option) core.FilterCapable {
	args := m.Called(kind, field, value, opts)
	return args.Get(0).(core.FilterCapable)
}

// FilterMinimumShouldMatch sets the minimum_should_match value
func (m *MockFilterCapable) FilterMinimumShouldMatch(value any) core.FilterCapable {
	args := m.Called(value)
	return args.Get(0).(core.FilterCapable)
}

// GetFilter returns the rendered filter tree
func (m *MockFilterCapable) GetFilter() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasFilter reports whether any filter clause has accumulated
func (m *MockFilterCapable) HasFilter() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockAggregationCapable is a mock implementation of the
// core.AggregationCapable interface.
type MockAggregationCapable struct {
	mock.Mock
}

// Aggregation stores a clause under the supplied or derived name
func (m *MockAggregationCapable) Aggregation(kind, field string, opts ...core.Option) core.AggregationCapable {
	args := m.Called(kind, field, opts)
	return args.Get(0).(core.AggregationCapable)
}

// Agg is an alias for Aggregation
func (m *MockAggregationCapable) Agg(kind, field string, opts ...core.Option) core.AggregationCapable {
	args := m.Called(kind, field, opts)
	return args.Get(0).(core.AggregationCapable)
}

// GetAggregations returns the aggregation map
func (m *MockAggregationCapable) GetAggregations() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasAggregations reports whether any aggregation has accumulated
func (m *MockAggregationCapable) HasAggregations() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockDocumentSource is a mock implementation of the core.DocumentSource
// interface, covering just the accessor pairs the build step consumes.
type MockDocumentSource struct {
	mock.Mock
}

// GetQuery returns the rendered query tree
func (m *MockDocumentSource) GetQuery() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasQuery reports whether any query clause has accumulated
func (m *MockDocumentSource) HasQuery() bool {
	args := m.Called()
	return args.Bool(0)
}

// GetFilter returns the rendered filter tree
func (m *MockDocumentSource) GetFilter() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasFilter reports whether any filter clause has accumulated
func (m *MockDocumentSource) HasFilter() bool {
	args := m.Called()
	return args.Bool(0)
}

// GetAggregations returns the aggregation map
func (m *MockDocumentSource) GetAggregations() map[string]any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}

// HasAggregations reports whether any aggregation has accumulated
func (m *MockDocumentSource) HasAggregations() bool {
	args := m.Called()
	return args.Bool(0)
}

// Interface conformance checks
var (
	_ core.QueryCapable       = (*MockQueryCapable)(nil)
	_ core.FilterCapable      = (*MockFilterCapable)(nil)
	_ core.AggregationCapable = (*MockAggregationCapable)(nil)
	_ core.DocumentSource     = (*MockDocumentSource)(nil)
)
