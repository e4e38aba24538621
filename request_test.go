package esb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchforge/esb"
	"github.com/searchforge/esb/pkg/core"
	esberrors "github.com/searchforge/esb/pkg/errors"
)

func TestBuildRequest(t *testing.T) {
	req, err := esb.New().
		Query("match", "title", "go").
		Sort("date", "desc").
		From(10).
		Size(5).
		BuildRequest()
	require.NoError(t, err)

	require.NotNil(t, req.Size)
	assert.Equal(t, 5, *req.Size)
	require.NotNil(t, req.From)
	assert.Equal(t, 10, *req.From)

	require.NotNil(t, req.Query)
	require.Contains(t, req.Query.Match, "title")
	assert.Equal(t, "go", req.Query.Match["title"].Query)

	assert.Len(t, req.Sort, 1)
}

func TestBuildRequestBoolQuery(t *testing.T) {
	req, err := esb.New().
		Query("match", "title", "go").
		Filter("term", "status", "published").
		BuildRequest()
	require.NoError(t, err)

	require.NotNil(t, req.Query)
	require.NotNil(t, req.Query.Bool)
	assert.Len(t, req.Query.Bool.Filter, 1)
	assert.Len(t, req.Query.Bool.Must, 1)
}

func TestBuildRequestAggregations(t *testing.T) {
	req, err := esb.New().
		Query("match", "title", "go").
		Filter("term", "status", "published").
		Aggregation("terms", "author", esb.WithSubAggregation(func(sub core.FilterAggregator) {
			sub.Aggregation("avg", "price")
		})).
		Sort("date", "desc").
		From(10).
		Size(5).
		BuildRequest()
	require.NoError(t, err)

	require.NotNil(t, req.Query)
	require.NotNil(t, req.Query.Bool)
	require.NotNil(t, req.Size)
	assert.Equal(t, 5, *req.Size)
	assert.Len(t, req.Sort, 1)

	require.Contains(t, req.Aggregations, "agg_terms_author")
	agg := req.Aggregations["agg_terms_author"]
	require.NotNil(t, agg.Terms)
	require.NotNil(t, agg.Terms.Field)
	assert.Equal(t, "author", *agg.Terms.Field)

	require.Contains(t, agg.Aggregations, "agg_avg_price")
	nested := agg.Aggregations["agg_avg_price"]
	require.NotNil(t, nested.Avg)
	require.NotNil(t, nested.Avg.Field)
	assert.Equal(t, "price", *nested.Avg.Field)
}

func TestBuildRequestEmpty(t *testing.T) {
	req, err := esb.New().BuildRequest()
	require.NoError(t, err)

	assert.Nil(t, req.Query)
	assert.Nil(t, req.Size)
	assert.Nil(t, req.From)
}

func TestBuildRequestEncodeError(t *testing.T) {
	_, err := esb.New().
		RawOption("bad", make(chan int)).
		BuildRequest()
	require.Error(t, err)
	assert.True(t, esberrors.IsEncode(err))
}
