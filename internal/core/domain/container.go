package domain

// ContainerKind tags the closed set of Container variants.
// Adapters switch on the kind rather than probing fields.
type ContainerKind string

const (
	// KindPage is a page that may own tables or collections.
	KindPage ContainerKind = "page"

	// KindTable is an embedded freeform table.
	KindTable ContainerKind = "table"

	// KindTableRow is one row of an embedded table.
	KindTableRow ContainerKind = "table_row"

	// KindCollection is a structured per-record database.
	KindCollection ContainerKind = "collection"

	// KindRecord is one record of a structured collection.
	KindRecord ContainerKind = "record"

	// KindToggle is a collapsible block that can hide vocabulary
	// from the pipeline. Only the audit pass cares about these.
	KindToggle ContainerKind = "toggle"

	// KindOther covers every block type the pipeline ignores.
	KindOther ContainerKind = "other"
)

// Container is one node of the hierarchical content store.
// Children are fetched lazily via cursor pagination; a Container
// carries only what its kind needs.
type Container struct {
	// ID is the store's stable identifier for this node.
	ID string

	// Kind discriminates the variant.
	Kind ContainerKind

	// Title is set for pages, collections and toggles.
	Title string

	// Cells holds the plain-text cell values for table rows,
	// in column order. Rich-text segments are already joined.
	Cells []string
}

// ContainerPage is one page of a paginated child listing.
type ContainerPage struct {
	Items      []Container
	HasMore    bool
	NextCursor string
}

// Collection describes a structured collection and its backing data source.
type Collection struct {
	ID           string
	DataSourceID string
}

// Record is one structured-collection record with its text properties
// flattened to plain strings. Non-text properties are dropped upstream.
type Record struct {
	ID     string
	Fields map[string]string
}

// RecordPage is one page of a paginated data-source query.
type RecordPage struct {
	Records    []Record
	HasMore    bool
	NextCursor string
}
