package clause_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/searchforge/esb/internal/clause"
)

func TestBuildValueCentric(t *testing.T) {
	body := clause.Build("message", "this is a test", nil)

	assert.Equal(t, map[string]any{"message": "this is a test"}, body)
}

func TestBuildValueWithOptions(t *testing.T) {
	body := clause.Build("message", "hello", map[string]any{"operator": "and"})

	assert.Equal(t, map[string]any{"message": "hello", "operator": "and"}, body)
}

func TestBuildFieldCentric(t *testing.T) {
	body := clause.Build("user", nil, map[string]any{"size": 10})

	assert.Equal(t, map[string]any{"field": "user", "size": 10}, body)
}

func TestBuildDegeneratesToFieldReference(t *testing.T) {
	body := clause.Build("price", nil, nil)

	assert.Equal(t, map[string]any{"field": "price"}, body)
}

func TestBuildEmptyFieldKeepsOptionsOnly(t *testing.T) {
	body := clause.Build("", nil, map[string]any{"lat": 41.12})

	assert.Equal(t, map[string]any{"lat": 41.12}, body)
}

func TestBuildValueWithoutFieldDropsValue(t *testing.T) {
	body := clause.Build("", "stray", nil)

	assert.Empty(t, body)
}

func TestBuildDoesNotAliasOptions(t *testing.T) {
	extra := map[string]any{"size": 10}
	body := clause.Build("user", nil, extra)

	body["size"] = 99

	assert.Equal(t, 10, extra["size"])
}

func TestBuildMapValue(t *testing.T) {
	rng := map[string]any{"gte": "2024-01-01", "lte": "2024-12-31"}
	body := clause.Build("timestamp", rng, nil)

	assert.Equal(t, map[string]any{"timestamp": rng}, body)
}
