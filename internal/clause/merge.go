package clause

import "strings"

// DeepClone returns a copy of v sharing no mutable structure with it.
// Maps and slices copy recursively; every other value copies as-is.
func DeepClone(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, val := range tv {
			out[k] = DeepClone(val)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, val := range tv {
			out[i] = DeepClone(val)
		}
		return out
	default:
		return v
	}
}

// CloneMap is DeepClone specialized to a map root. A nil map clones to an
// empty, writable map.
func CloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = DeepClone(v)
	}
	return out
}

// DeepMerge folds each src into dst in order and returns dst. Map values
// merge recursively key by key; everything else, slices included, replaces
// the destination value with a deep clone of the source, so dst never
// aliases structure owned by a source.
func DeepMerge(dst map[string]any, srcs ...map[string]any) map[string]any {
	for _, src := range srcs {
		for k, sv := range src {
			if dm, ok := dst[k].(map[string]any); ok {
				if sm, ok := sv.(map[string]any); ok {
					DeepMerge(dm, sm)
					continue
				}
			}
			dst[k] = DeepClone(sv)
		}
	}
	return dst
}

// SetPath sets a dot-separated path inside dst, creating intermediate maps
// as needed and replacing non-map intermediates.
func SetPath(dst map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	cur := dst
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[k] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = value
}
