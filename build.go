package esb

import (
	"github.com/searchforge/esb/internal/clause"
	"github.com/searchforge/esb/pkg/core"
)

// Build assembles the final query document. An explicit version
// argument overrides the dialect the builder was constructed with. The
// returned document is a deep copy; mutating the builder afterwards
// never changes it.
func (b *Builder) Build(version ...core.Version) map[string]any {
	v := b.version
	if len(version) > 0 {
		v = version[0]
	}

	queries := b.queries.GetQuery()
	filters := b.filters.GetFilter()
	aggregations := b.aggregations.GetAggregations()

	if v == core.Version1 {
		return buildLegacy(b.body, queries, filters, aggregations)
	}
	return buildModern(b.body, queries, filters, aggregations)
}

// buildLegacy produces the filtered-query shape used before
// Elasticsearch 2.0
func buildLegacy(body, queries, filters, aggregations map[string]any) map[string]any {
	doc := clause.CloneMap(body)

	if len(filters) > 0 {
		clause.SetPath(doc, "query.filtered.filter", clause.CloneMap(filters))
		if len(queries) > 0 {
			clause.SetPath(doc, "query.filtered.query", clause.CloneMap(queries))
		}
	} else if len(queries) > 0 {
		doc["query"] = clause.CloneMap(queries)
	}

	if len(aggregations) > 0 {
		doc["aggregations"] = clause.CloneMap(aggregations)
	}
	return doc
}

// buildModern produces the bool-query shape. Filters land under
// query.bool.filter; a query that is itself a bool node contributes its
// children beside the filter, any other query becomes the must clause.
func buildModern(body, queries, filters, aggregations map[string]any) map[string]any {
	doc := clause.CloneMap(body)

	if len(filters) > 0 {
		filterBool := make(map[string]any)
		clause.SetPath(filterBool, "query.bool.filter", clause.CloneMap(filters))

		if boolRoot, ok := queries["bool"].(map[string]any); ok {
			queryBool := make(map[string]any)
			clause.SetPath(queryBool, "query.bool", clause.CloneMap(boolRoot))
			doc = clause.DeepMerge(doc, queryBool)
		} else if len(queries) > 0 {
			clause.SetPath(filterBool, "query.bool.must", clause.CloneMap(queries))
		}

		doc = clause.DeepMerge(doc, filterBool)
	} else if len(queries) > 0 {
		doc["query"] = clause.CloneMap(queries)
	}

	if len(aggregations) > 0 {
		doc["aggs"] = clause.CloneMap(aggregations)
	}
	return doc
}
