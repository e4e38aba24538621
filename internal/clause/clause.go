package clause

// Build produces the type-specific inner body of a clause from a field
// name, an optional raw value, and extra options. Value-centric calls nest
// the value under the field name; field-centric calls reference the field
// under the "field" key. With no value and no options the body degenerates
// to the bare field reference. Never fails: malformed input produces a
// best-effort body and the engine, not this layer, judges semantics.
func Build(field string, value any, extra map[string]any) map[string]any {
	body := make(map[string]any, len(extra)+1)

	switch {
	case field != "" && value != nil:
		body[field] = value
	case field != "":
		body["field"] = field
	}

	for k, v := range extra {
		body[k] = v
	}
	return body
}
