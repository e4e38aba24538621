package core

// Version selects the output document layout produced by a build.
type Version string

const (
	// Version1 targets the legacy filtered-query layout: filters nest under
	// query.filtered.filter and aggregations render under "aggregations".
	Version1 Version = "v1"

	// Version2 targets the bool-query layout used by modern engines: filters
	// nest under query.bool.filter and aggregations render under "aggs".
	Version2 Version = "v2"
)
