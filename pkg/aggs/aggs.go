// Package aggs implements the aggregation builder: a name-keyed clause map
// supporting flat and arbitrarily nested aggregations.
package aggs

import (
	"github.com/searchforge/esb/internal/clause"
	"github.com/searchforge/esb/pkg/core"
	"github.com/searchforge/esb/pkg/naming"
)

// AggregationBuilder owns a name-keyed aggregation map. Fresh instances
// come from NewAggregationBuilder.
type AggregationBuilder struct {
	aggs map[string]any
}

// NewAggregationBuilder creates an empty aggregation accumulator
func NewAggregationBuilder() *AggregationBuilder {
	return &AggregationBuilder{aggs: make(map[string]any)}
}

// Aggregation stores one aggregation clause. The map key is the name
// supplied via core.WithName or derived as agg_<kind>_<field>; same-name
// entries silently overwrite. An options map may carry the reserved key
// "_meta", stripped from the clause body and attached as a meta sibling. A
// core.WithSubAggregation callback runs against a fresh child builder with
// filter and aggregation capability; afterwards the child's accumulated
// filter attaches under "filter" and its aggregations under "aggs". The
// parent sees nothing else of the child, so every nesting level is fully
// isolated.
func (a *AggregationBuilder) Aggregation(kind, field string, opts ...core.Option) core.AggregationCapable {
	call := core.ResolveOptions(opts...)

	name := call.Name
	if name == "" {
		name = naming.AggName(kind, field)
	}

	extra := call.Extra
	meta, hasMeta := extra[naming.MetaOption]
	if hasMeta {
		stripped := make(map[string]any, len(extra)-1)
		for k, v := range extra {
			if k != naming.MetaOption {
				stripped[k] = v
			}
		}
		extra = stripped
	}

	inner := map[string]any{kind: clause.Build(field, nil, extra)}
	if hasMeta {
		inner["meta"] = meta
	}

	if call.SubAggregation != nil {
		child := NewSub()
		call.SubAggregation(child)
		if child.HasFilter() {
			inner["filter"] = child.GetFilter()
		}
		if child.HasAggregations() {
			inner["aggs"] = child.GetAggregations()
		}
	}

	a.aggs[name] = inner
	return a
}

// Agg is an alias for Aggregation
func (a *AggregationBuilder) Agg(kind, field string, opts ...core.Option) core.AggregationCapable {
	return a.Aggregation(kind, field, opts...)
}

// GetAggregations returns the live aggregation map; callers must not
// assume immutability
func (a *AggregationBuilder) GetAggregations() map[string]any {
	return a.aggs
}

// HasAggregations reports whether any aggregation has accumulated
func (a *AggregationBuilder) HasAggregations() bool {
	return len(a.aggs) > 0
}

// Clone returns an independent copy of the accumulator
func (a *AggregationBuilder) Clone() *AggregationBuilder {
	return &AggregationBuilder{aggs: clause.CloneMap(a.aggs)}
}

var _ core.AggregationCapable = (*AggregationBuilder)(nil)
