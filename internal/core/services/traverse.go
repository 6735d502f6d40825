package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
)

// SourceKind selects which store representation a run reads.
// The two representations are mutually exclusive per run, never mixed.
type SourceKind string

const (
	// SourceTables reads embedded freeform tables.
	SourceTables SourceKind = "tables"

	// SourceDatabases reads structured per-record collections.
	SourceDatabases SourceKind = "databases"
)

// NotesFilter decides whether a page title names the reserved notes
// page, which is excluded from every pass. Fold selects case-insensitive
// matching; the exact-match variant is the default.
type NotesFilter struct {
	Title string
	Fold  bool
}

// Excluded reports whether a page with this title is filtered out.
func (f NotesFilter) Excluded(title string) bool {
	if f.Title == "" {
		return false
	}
	if f.Fold {
		return strings.EqualFold(title, f.Title)
	}
	return title == f.Title
}

// PageRows couples a page title with the unified rows found on it,
// in source order.
type PageRows struct {
	Title string
	Rows  []domain.Row
}

// Traverser walks the content tree: top-level pages, then the tables
// or collections each page owns. Traversal errors are fatal to the
// caller since a partial tree would silently under-cover the source.
type Traverser struct {
	store driven.ContentStore
	notes NotesFilter
}

// NewTraverser creates a traverser over store.
func NewTraverser(store driven.ContentStore, notes NotesFilter) *Traverser {
	return &Traverser{store: store, notes: notes}
}

// Children returns the complete ordered child sequence of a container.
func (t *Traverser) Children(ctx context.Context, containerID string) ([]domain.Container, error) {
	return FetchAll(func(cursor string) ([]domain.Container, string, bool, error) {
		page, err := t.store.ListChildren(ctx, containerID, cursor)
		if err != nil {
			return nil, "", false, err
		}
		return page.Items, page.NextCursor, page.HasMore, nil
	})
}

// Pages returns the child pages of the parent container, with the
// reserved notes page filtered out.
func (t *Traverser) Pages(ctx context.Context, parentID string) ([]domain.Container, error) {
	children, err := t.Children(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	var pages []domain.Container
	for _, c := range children {
		if c.Kind != domain.KindPage || t.notes.Excluded(c.Title) {
			continue
		}
		pages = append(pages, c)
	}
	return pages, nil
}

// PageTableRows collects the rows of every table on a page, in table
// order. Tables without a usable schema contribute nothing.
func (t *Traverser) PageTableRows(ctx context.Context, content []domain.Container) ([]domain.Row, error) {
	var rows []domain.Row
	for _, c := range content {
		if c.Kind != domain.KindTable {
			continue
		}
		children, err := t.Children(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list table %s: %w", c.ID, err)
		}
		rows = append(rows, RowsFromTable(children)...)
	}
	return rows, nil
}

// PageDatabaseRows collects the rows of every structured collection on
// a page, in collection order.
func (t *Traverser) PageDatabaseRows(ctx context.Context, content []domain.Container) ([]domain.Row, error) {
	var rows []domain.Row
	for _, c := range content {
		if c.Kind != domain.KindCollection {
			continue
		}
		coll, err := t.store.RetrieveCollection(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("retrieve collection %s: %w", c.ID, err)
		}
		records, err := FetchAll(func(cursor string) ([]domain.Record, string, bool, error) {
			page, err := t.store.QueryDataSource(ctx, coll.DataSourceID, cursor)
			if err != nil {
				return nil, "", false, err
			}
			return page.Records, page.NextCursor, page.HasMore, nil
		})
		if err != nil {
			return nil, fmt.Errorf("query data source %s: %w", coll.DataSourceID, err)
		}
		for _, rec := range records {
			rows = append(rows, RowFromRecord(rec))
		}
	}
	return rows, nil
}

// RowsByPage returns every page's rows under the selected representation,
// preserving source traversal order.
func (t *Traverser) RowsByPage(ctx context.Context, parentID string, source SourceKind) ([]PageRows, error) {
	pages, err := t.Pages(ctx, parentID)
	if err != nil {
		return nil, err
	}

	var out []PageRows
	for _, page := range pages {
		content, err := t.Children(ctx, page.ID)
		if err != nil {
			return nil, fmt.Errorf("list page %q: %w", page.Title, err)
		}

		var rows []domain.Row
		switch source {
		case SourceDatabases:
			rows, err = t.PageDatabaseRows(ctx, content)
		default:
			rows, err = t.PageTableRows(ctx, content)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, PageRows{Title: page.Title, Rows: rows})
	}
	return out, nil
}
