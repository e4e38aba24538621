package query

import (
	"github.com/searchforge/esb/internal/clause"
	"github.com/searchforge/esb/pkg/core"
)

// boolTree accumulates the clauses of one boolean context. The and list
// renders as must, or as should, not as must_not.
type boolTree struct {
	and []map[string]any
	or  []map[string]any
	not []map[string]any

	minimumShouldMatch any
}

// push assembles one clause and appends it to dest. A sub-query callback,
// when present, runs against a fresh child builder whose accumulated query
// and filter state attach inside the clause body.
func (t *boolTree) push(dest *[]map[string]any, kind, field string, value any, opts []core.Option) {
	call := core.ResolveOptions(opts...)

	body := clause.Build(field, value, call.Extra)
	if call.SubQuery != nil {
		sub := NewSub()
		call.SubQuery(sub)
		if sub.HasQuery() {
			body["query"] = sub.GetQuery()
		}
		if sub.HasFilter() {
			body["filter"] = sub.GetFilter()
		}
	}

	*dest = append(*dest, map[string]any{kind: body})
}

// render produces the accumulated tree. A single and-clause with no or/not
// clauses renders bare; anything else renders under a bool node with a
// single must clause unwrapped, should and must_not as lists, and
// minimum_should_match included only when more than one should clause
// exists.
func (t *boolTree) render() map[string]any {
	if len(t.and) == 1 && len(t.or) == 0 && len(t.not) == 0 {
		return t.and[0]
	}
	if t.empty() {
		return map[string]any{}
	}

	node := make(map[string]any)
	switch {
	case len(t.and) == 1:
		node["must"] = t.and[0]
	case len(t.and) > 1:
		node["must"] = asList(t.and)
	}
	if len(t.or) > 0 {
		node["should"] = asList(t.or)
	}
	if len(t.not) > 0 {
		node["must_not"] = asList(t.not)
	}
	if t.minimumShouldMatch != nil && len(t.or) > 1 {
		node["minimum_should_match"] = t.minimumShouldMatch
	}
	return map[string]any{"bool": node}
}

func (t *boolTree) empty() bool {
	return len(t.and) == 0 && len(t.or) == 0 && len(t.not) == 0
}

// clone deep-copies the tree so chains on the copy never touch the
// original's clause maps.
func (t *boolTree) clone() boolTree {
	return boolTree{
		and:                cloneClauses(t.and),
		or:                 cloneClauses(t.or),
		not:                cloneClauses(t.not),
		minimumShouldMatch: t.minimumShouldMatch,
	}
}

func cloneClauses(cs []map[string]any) []map[string]any {
	if cs == nil {
		return nil
	}
	out := make([]map[string]any, len(cs))
	for i, c := range cs {
		out[i] = clause.CloneMap(c)
	}
	return out
}

func asList(cs []map[string]any) []any {
	out := make([]any, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}
