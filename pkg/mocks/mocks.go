// Package mocks provides mock implementations for esb interfaces.
//
// Code that accepts the capability interfaces from pkg/core has to
// satisfy every chainable method when writing unit tests. Instead of
// discovering missing methods through trial and error, you can use
// these pre-built mocks.
//
// # Installation
//
// Import the mocks package in your test files:
//
//	import "github.com/searchforge/esb/pkg/mocks"
//
// # Basic Usage
//
// The most common use case is mocking a query-capable collaborator:
//
//	func TestSearchService(t *testing.T) {
//	    // Create the mock
//	    mockQuery := new(mocks.MockQueryCapable)
//
//	    // Setup expectations
//	    mockQuery.On("Query", "match", "title", "go", mock.Anything).Return(mockQuery)
//	    mockQuery.On("GetQuery").Return(map[string]any{
//	        "match": map[string]any{"title": "go"},
//	    })
//	    mockQuery.On("HasQuery").Return(true)
//
//	    // Use in your service
//	    service := NewSearchService(mockQuery)
//	    doc := service.BuildDocument()
//
//	    // Assert expectations were met
//	    mockQuery.AssertExpectations(t)
//	}
//
// # Chaining Methods
//
// Clause methods return the capability interface to allow chaining, so
// have them return the mock itself:
//
//	mockFilter.On("Filter", "term", "status", "active", mock.Anything).Return(mockFilter)
//	mockFilter.On("NotFilter", "term", "hidden", true, mock.Anything).Return(mockFilter)
//
// # Nested Callbacks
//
// To test code that nests through WithSubQuery or WithSubAggregation,
// hand the callback a MockQueryFilter or MockFilterAggregator:
//
//	nested := new(mocks.MockFilterAggregator)
//	nested.On("Filter", "range", "date", mock.Anything, mock.Anything).Return(nested)
//	nested.On("Aggregation", "avg", "price", mock.Anything).Return(nested)
//
// # Tips
//
// 1. Use mock.Anything for the trailing options argument unless you assert on it
// 2. Use mock.MatchedBy for custom argument matching
// 3. Always assert expectations were met with AssertExpectations
// 4. Return the mock itself for chainable methods
package mocks

// Helper type aliases for convenience
type (
	// QueryCapable is an alias for MockQueryCapable to allow shorter declarations
	QueryCapable = MockQueryCapable

	// FilterCapable is an alias for MockFilterCapable to allow shorter declarations
	FilterCapable = MockFilterCapable

	// AggregationCapable is an alias for MockAggregationCapable to allow shorter declarations
	AggregationCapable = MockAggregationCapable

	// DocumentSource is an alias for MockDocumentSource to allow shorter declarations
	DocumentSource = MockDocumentSource
)
