package clause

import "github.com/searchforge/esb/pkg/naming"

// MergeSort folds one sort input into seq and returns the sequence.
// Ordinary fields keep at most one entry: an existing entry for the field
// is updated in place, preserving its position and any options the new
// value does not override. Entries keyed by the geo-distance marker always
// append, so multiple geo criteria coexist.
func MergeSort(seq []any, field string, value any) []any {
	payload := sortPayload(value)

	if field == naming.GeoDistanceSort {
		return append(seq, map[string]any{field: payload})
	}

	for _, entry := range seq {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		existing, ok := m[field]
		if !ok {
			continue
		}
		if opts, ok := existing.(map[string]any); ok {
			for k, v := range payload {
				opts[k] = v
			}
		} else {
			m[field] = payload
		}
		return seq
	}

	return append(seq, map[string]any{field: payload})
}

// sortPayload normalizes a sort value to an options map. Bare directions
// become {"order": dir} so later merges can overwrite direction without
// discarding unrelated options.
func sortPayload(value any) map[string]any {
	if opts, ok := value.(map[string]any); ok {
		out := make(map[string]any, len(opts))
		for k, v := range opts {
			out[k] = v
		}
		return out
	}
	return map[string]any{"order": value}
}
