package esb

import (
	"maps"
	"slices"

	"github.com/searchforge/esb/internal/clause"
)

// Sort adds or updates a sort entry for the field. The direction
// defaults to ascending. Repeated calls for the same field overwrite
// its direction in place; _geo_distance entries always append.
func (b *Builder) Sort(field string, direction ...string) *Builder {
	dir := "asc"
	if len(direction) > 0 {
		dir = direction[0]
	}
	b.body["sort"] = clause.MergeSort(b.sortSlice(), field, dir)
	return b
}

// SortWith adds or updates a sort entry with explicit options such as
// order, mode or missing-value handling
func (b *Builder) SortWith(field string, options map[string]any) *Builder {
	b.body["sort"] = clause.MergeSort(b.sortSlice(), field, options)
	return b
}

// SortBy applies several sort entries at once. String entries sort by
// the default direction; map entries contribute each field/value pair,
// with string values treated as directions.
func (b *Builder) SortBy(entries []any, defaultDirection ...string) *Builder {
	dir := "asc"
	if len(defaultDirection) > 0 {
		dir = defaultDirection[0]
	}

	seq := b.sortSlice()
	for _, entry := range entries {
		switch e := entry.(type) {
		case string:
			seq = clause.MergeSort(seq, e, dir)
		case map[string]any:
			// Map iteration order is random; sort the keys so the
			// resulting entry order is stable.
			for _, field := range slices.Sorted(maps.Keys(e)) {
				seq = clause.MergeSort(seq, field, e[field])
			}
		}
	}
	b.body["sort"] = seq
	return b
}

// From sets the offset of the first hit to return. Zero is preserved in
// the built document.
func (b *Builder) From(offset int) *Builder {
	b.body["from"] = offset
	return b
}

// Size sets the maximum number of hits to return
func (b *Builder) Size(size int) *Builder {
	b.body["size"] = size
	return b
}

// RawOption sets an arbitrary key on the document root, for body-level
// settings the builder has no dedicated method for (_source, track_scores,
// suggest and the like)
func (b *Builder) RawOption(key string, value any) *Builder {
	b.body[key] = value
	return b
}

// sortSlice returns the current sort state as a slice. A bare map set
// through RawOption is wrapped so merging can proceed.
func (b *Builder) sortSlice() []any {
	switch cur := b.body["sort"].(type) {
	case []any:
		return cur
	case nil:
		return nil
	default:
		return []any{cur}
	}
}
