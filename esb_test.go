package esb_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchforge/esb"
	"github.com/searchforge/esb/pkg/core"
	"github.com/searchforge/esb/pkg/marshal"
)

func TestNewBuilderIsEmpty(t *testing.T) {
	b := esb.New()

	assert.False(t, b.HasQuery())
	assert.False(t, b.HasFilter())
	assert.False(t, b.HasAggregations())
	assert.Empty(t, b.GetQuery())
	assert.Empty(t, b.GetFilter())
	assert.Empty(t, b.GetAggregations())
}

func TestChainingAcrossFamilies(t *testing.T) {
	doc := esb.New().
		Query("match", "title", "go").
		Filter("term", "status", "published").
		Aggregation("terms", "author").
		Sort("date", "desc").
		From(20).
		Size(10).
		Build()

	assert.Contains(t, doc, "query")
	assert.Contains(t, doc, "aggs")
	assert.Contains(t, doc, "sort")
	assert.Equal(t, 20, doc["from"])
	assert.Equal(t, 10, doc["size"])
}

func TestOrQueriesWithMinimumShouldMatch(t *testing.T) {
	doc := esb.New().
		OrQuery("match", "title", "go").
		OrQuery("match", "title", "rust").
		QueryMinimumShouldMatch(2).
		Build()

	want := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"should": []any{
					map[string]any{"match": map[string]any{"title": "go"}},
					map[string]any{"match": map[string]any{"title": "rust"}},
				},
				"minimum_should_match": 2,
			},
		},
	}
	assert.Equal(t, want, doc)
}

func TestNotQueryAndNotFilter(t *testing.T) {
	doc := esb.New().
		Query("match", "title", "go").
		NotQuery("match", "title", "deprecated").
		NotFilter("term", "hidden", true).
		Build()

	boolNode := doc["query"].(map[string]any)["bool"].(map[string]any)
	assert.Equal(t, []any{
		map[string]any{"term": map[string]any{"hidden": true}},
	}, boolNode["filter"].(map[string]any)["bool"].(map[string]any)["must_not"])
	assert.Contains(t, boolNode, "must")
	assert.Contains(t, boolNode, "must_not")
}

func TestNestedSubQuery(t *testing.T) {
	doc := esb.New().
		Query("nested", "", nil,
			esb.WithOptions(map[string]any{"path": "obj1", "score_mode": "avg"}),
			esb.WithSubQuery(func(q core.QueryFilter) {
				q.Query("match", "obj1.color", "blue")
			}),
		).
		Build()

	want := map[string]any{
		"query": map[string]any{
			"nested": map[string]any{
				"path":       "obj1",
				"score_mode": "avg",
				"query": map[string]any{
					"match": map[string]any{"obj1.color": "blue"},
				},
			},
		},
	}
	assert.Equal(t, want, doc)
}

func TestAggregationWithNameAndMeta(t *testing.T) {
	doc := esb.New().
		Aggregation("terms", "user",
			esb.WithName("top_users"),
			esb.WithOptions(map[string]any{"size": 5, "_meta": map[string]any{"owner": "search-team"}}),
		).
		Build()

	want := map[string]any{
		"aggs": map[string]any{
			"top_users": map[string]any{
				"terms": map[string]any{"field": "user", "size": 5},
				"meta":  map[string]any{"owner": "search-team"},
			},
		},
	}
	assert.Equal(t, want, doc)
}

func TestNestedAggregation(t *testing.T) {
	doc := esb.New().
		Agg("terms", "author",
			esb.WithSubAggregation(func(a core.FilterAggregator) {
				a.Aggregation("max", "price")
			}),
		).
		Build()

	want := map[string]any{
		"aggs": map[string]any{
			"agg_terms_author": map[string]any{
				"terms": map[string]any{"field": "author"},
				"aggs": map[string]any{
					"agg_max_price": map[string]any{
						"max": map[string]any{"field": "price"},
					},
				},
			},
		},
	}
	assert.Equal(t, want, doc)
}

func TestClone(t *testing.T) {
	original := esb.New(esb.WithVersion(esb.Version1)).
		Query("match", "title", "go").
		Sort("date").
		Size(10)

	clone := original.Clone()

	// Divergence after cloning stays local to each builder.
	original.Query("match", "body", "tutorial").Size(20)
	clone.Filter("term", "lang", "en")

	assert.Equal(t, 20, original.Build()["size"])
	assert.Equal(t, 10, clone.Build()["size"])
	assert.False(t, original.HasFilter())
	assert.True(t, clone.HasFilter())

	// The clone keeps the configured dialect.
	assert.Contains(t, clone.Build()["query"], "filtered")
}

func TestCloneSharesNoSortState(t *testing.T) {
	original := esb.New().Sort("date", "asc")
	clone := original.Clone()

	clone.Sort("date", "desc")

	assert.Equal(t, []any{
		map[string]any{"date": map[string]any{"order": "asc"}},
	}, original.Build()["sort"])
}

func TestMarshalJSON(t *testing.T) {
	b := esb.New().Query("match", "title", "go").Size(3)

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":{"match":{"title":"go"}},"size":3}`, string(raw))
}

func TestString(t *testing.T) {
	marshal.SetGlobalConfig(marshal.DefaultConfig())

	s := esb.New().Size(1).String()
	assert.Equal(t, "{\n  \"size\": 1\n}", s)
}

func TestBuilderIsDocumentSource(t *testing.T) {
	var src core.DocumentSource = esb.New().
		Query("match", "title", "go").
		Filter("term", "lang", "en").
		Aggregation("terms", "author")

	assert.True(t, src.HasQuery())
	assert.True(t, src.HasFilter())
	assert.True(t, src.HasAggregations())
	assert.Contains(t, src.GetAggregations(), "agg_terms_author")
}

func TestGetAggregationsIsLive(t *testing.T) {
	b := esb.New().Aggregation("terms", "user")

	live := b.GetAggregations()
	live["extra"] = map[string]any{"value_count": map[string]any{"field": "id"}}

	assert.Contains(t, b.Build()["aggs"], "extra")
}
