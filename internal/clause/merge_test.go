package clause_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchforge/esb/internal/clause"
)

func TestDeepCloneIsolation(t *testing.T) {
	src := map[string]any{
		"query": map[string]any{"match": map[string]any{"title": "go"}},
		"sort":  []any{map[string]any{"name": map[string]any{"order": "asc"}}},
	}

	cloned := clause.DeepClone(src).(map[string]any)
	cloned["query"].(map[string]any)["match"].(map[string]any)["title"] = "changed"
	cloned["sort"].([]any)[0].(map[string]any)["name"].(map[string]any)["order"] = "desc"

	assert.Equal(t, "go", src["query"].(map[string]any)["match"].(map[string]any)["title"])
	assert.Equal(t, "asc", src["sort"].([]any)[0].(map[string]any)["name"].(map[string]any)["order"])
}

func TestCloneMapNil(t *testing.T) {
	out := clause.CloneMap(nil)

	require.NotNil(t, out)
	out["k"] = "writable"
	assert.Equal(t, "writable", out["k"])
}

func TestDeepMergeRecursesIntoMaps(t *testing.T) {
	dst := map[string]any{
		"query": map[string]any{"bool": map[string]any{"filter": map[string]any{"term": map[string]any{"user": "kimchy"}}}},
	}
	src := map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": map[string]any{"match": map[string]any{"title": "go"}}}},
	}

	clause.DeepMerge(dst, src)

	boolNode := dst["query"].(map[string]any)["bool"].(map[string]any)
	assert.Contains(t, boolNode, "filter")
	assert.Contains(t, boolNode, "must")
}

func TestDeepMergeReplacesSlices(t *testing.T) {
	dst := map[string]any{"sort": []any{"a", "b"}}
	src := map[string]any{"sort": []any{"c"}}

	clause.DeepMerge(dst, src)

	assert.Equal(t, []any{"c"}, dst["sort"])
}

func TestDeepMergeDoesNotAliasSource(t *testing.T) {
	src := map[string]any{"aggs": map[string]any{"agg_terms_user": map[string]any{"terms": map[string]any{"field": "user"}}}}
	dst := clause.DeepMerge(map[string]any{}, src)

	dst["aggs"].(map[string]any)["agg_terms_user"].(map[string]any)["terms"].(map[string]any)["field"] = "changed"

	assert.Equal(t, "user", src["aggs"].(map[string]any)["agg_terms_user"].(map[string]any)["terms"].(map[string]any)["field"])
}

func TestDeepMergeSeveralSourcesInOrder(t *testing.T) {
	dst := clause.DeepMerge(map[string]any{},
		map[string]any{"size": 10, "from": 0},
		map[string]any{"size": 25},
	)

	assert.Equal(t, 25, dst["size"])
	assert.Equal(t, 0, dst["from"])
}

func TestSetPathCreatesIntermediates(t *testing.T) {
	dst := map[string]any{}
	clause.SetPath(dst, "query.bool.filter", map[string]any{"term": map[string]any{"user": "kimchy"}})

	assert.Equal(t, map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": map[string]any{"term": map[string]any{"user": "kimchy"}},
			},
		},
	}, dst)
}

func TestSetPathReplacesNonMapIntermediate(t *testing.T) {
	dst := map[string]any{"query": "scalar"}
	clause.SetPath(dst, "query.bool", map[string]any{})

	assert.Equal(t, map[string]any{"query": map[string]any{"bool": map[string]any{}}}, dst)
}

func TestSetPathSingleKey(t *testing.T) {
	dst := map[string]any{}
	clause.SetPath(dst, "aggs", map[string]any{"a": 1})

	assert.Equal(t, map[string]any{"aggs": map[string]any{"a": 1}}, dst)
}
