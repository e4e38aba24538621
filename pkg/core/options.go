package core

// CallOptions holds the optional arguments a clause or aggregation call
// accepts. Consumers read only the fields relevant to their context and
// ignore the rest, so passing an option at a call site that cannot use it
// degrades silently instead of failing.
type CallOptions struct {
	// Name overrides the generated aggregation map key.
	Name string

	// Extra carries additional keys merged into the clause body. For
	// aggregations the reserved key "_meta" attaches metadata to the
	// clause instead of merging.
	Extra map[string]any

	// SubQuery builds a nested sub-query inside the clause body.
	SubQuery func(QueryFilter)

	// SubAggregation builds nested child aggregations under the clause.
	SubAggregation func(FilterAggregator)
}

// Option configures a single clause or aggregation call.
type Option func(*CallOptions)

// WithName overrides the generated aggregation name.
func WithName(name string) Option {
	return func(c *CallOptions) {
		c.Name = name
	}
}

// WithOptions merges extra keys into the clause body. Repeated use
// accumulates; later keys win.
func WithOptions(extra map[string]any) Option {
	return func(c *CallOptions) {
		if len(extra) == 0 {
			return
		}
		if c.Extra == nil {
			c.Extra = make(map[string]any, len(extra))
		}
		for k, v := range extra {
			c.Extra[k] = v
		}
	}
}

// WithSubQuery nests a sub-query built by fn inside the clause body. The
// callback receives a fresh child builder with query and filter capability;
// its accumulated state attaches under the clause's "query" and "filter"
// keys once the callback returns.
func WithSubQuery(fn func(QueryFilter)) Option {
	return func(c *CallOptions) {
		c.SubQuery = fn
	}
}

// WithSubAggregation nests child aggregations built by fn under the clause.
// The callback receives a fresh child builder with filter and aggregation
// capability; its accumulated state attaches under the clause's "filter"
// and "aggs" keys once the callback returns.
func WithSubAggregation(fn func(FilterAggregator)) Option {
	return func(c *CallOptions) {
		c.SubAggregation = fn
	}
}

// ResolveOptions folds opts into a CallOptions value.
func ResolveOptions(opts ...Option) CallOptions {
	var call CallOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&call)
		}
	}
	return call
}
