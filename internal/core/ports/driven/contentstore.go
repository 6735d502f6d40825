package driven

import (
	"context"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
)

// ContentStore is the boundary to the hierarchical content store.
// Listing and querying are cursor-paginated; callers follow cursors
// until the store reports no more pages.
type ContentStore interface {
	// ListChildren returns one page of a container's ordered children.
	// An empty cursor requests the first page.
	ListChildren(ctx context.Context, containerID, cursor string) (domain.ContainerPage, error)

	// RetrieveCollection resolves a structured collection to its
	// backing data source.
	RetrieveCollection(ctx context.Context, collectionID string) (domain.Collection, error)

	// QueryDataSource returns one page of a data source's records with
	// text properties flattened to plain strings.
	QueryDataSource(ctx context.Context, dataSourceID, cursor string) (domain.RecordPage, error)

	// UpdateTableRow replaces every cell of a table row.
	UpdateTableRow(ctx context.Context, rowID string, cells []string) error

	// UpdateRecordField replaces one text property of a record.
	UpdateRecordField(ctx context.Context, recordID, field, value string) error
}
