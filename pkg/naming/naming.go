// Package naming owns the reserved key markers and derives the default
// names used for aggregation map keys.
package naming

import "fmt"

const (
	// MetaOption is the reserved options key whose value attaches to an
	// aggregation clause as metadata instead of merging into its body.
	MetaOption = "_meta"

	// GeoDistanceSort is the reserved sort field whose entries always
	// append to the sort sequence rather than merging in place, since
	// multiple geo-distance criteria can coexist.
	GeoDistanceSort = "_geo_distance"
)

// AggName returns the default map key for an aggregation of the given kind
// over the given field.
func AggName(kind, field string) string {
	return fmt.Sprintf("agg_%s_%s", kind, field)
}
