// Package notion implements the content-store port against the Notion
// HTTP API: cursor-paginated block listing, data-source queries and
// row/property updates.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ContentStore = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2025-09-03"
	DefaultTimeout = 30 * time.Second

	// Notion allows an average of 3 requests per second.
	DefaultRequestsPerSecond = 3.0
	DefaultBurst             = 3

	// pageSize is the listing page size. The store may still return
	// fewer items and set has_more.
	pageSize = 100
)

// Config holds configuration for the Notion client.
type Config struct {
	// Token is the integration token (required).
	Token string

	// BaseURL is the API base URL (default: https://api.notion.com).
	BaseURL string

	// Version is the Notion-Version header (default: 2025-09-03).
	Version string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond caps the sustained request rate (default: 3).
	RequestsPerSecond float64
}

// Client is an HTTP client for the Notion API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	version string
	limiter *rate.Limiter
}

// NewClient creates a new Notion client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notion: token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		version: cfg.Version,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), DefaultBurst),
	}, nil
}

// ListChildren returns one page of a block's children.
func (c *Client) ListChildren(ctx context.Context, containerID, cursor string) (domain.ContainerPage, error) {
	path := fmt.Sprintf("/v1/blocks/%s/children?page_size=%d", containerID, pageSize)
	if cursor != "" {
		path += "&start_cursor=" + url.QueryEscape(cursor)
	}

	var resp listChildrenResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return domain.ContainerPage{}, fmt.Errorf("list children of %s: %w", containerID, err)
	}

	page := domain.ContainerPage{HasMore: resp.HasMore, NextCursor: resp.NextCursor}
	for _, b := range resp.Results {
		page.Items = append(page.Items, b.toContainer())
	}
	return page, nil
}

// RetrieveCollection resolves a database to its first data source.
func (c *Client) RetrieveCollection(ctx context.Context, collectionID string) (domain.Collection, error) {
	var resp databaseResponse
	if err := c.do(ctx, http.MethodGet, "/v1/databases/"+collectionID, nil, &resp); err != nil {
		return domain.Collection{}, fmt.Errorf("retrieve database %s: %w", collectionID, err)
	}
	if len(resp.DataSources) == 0 {
		return domain.Collection{}, fmt.Errorf("database %s: %w: no data sources", collectionID, domain.ErrNotFound)
	}
	return domain.Collection{ID: collectionID, DataSourceID: resp.DataSources[0].ID}, nil
}

// QueryDataSource returns one page of records with text properties
// flattened. Properties that are neither rich_text nor title are
// dropped here; the pipeline has no use for them.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID, cursor string) (domain.RecordPage, error) {
	req := queryRequest{PageSize: pageSize, StartCursor: cursor}

	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, "/v1/data_sources/"+dataSourceID+"/query", req, &resp); err != nil {
		return domain.RecordPage{}, fmt.Errorf("query data source %s: %w", dataSourceID, err)
	}

	page := domain.RecordPage{HasMore: resp.HasMore, NextCursor: resp.NextCursor}
	for _, r := range resp.Results {
		rec := domain.Record{ID: r.ID, Fields: make(map[string]string, len(r.Properties))}
		for name, prop := range r.Properties {
			switch prop.Type {
			case "rich_text":
				rec.Fields[name] = plainText(prop.RichText)
			case "title":
				rec.Fields[name] = plainText(prop.Title)
			}
		}
		page.Records = append(page.Records, rec)
	}
	return page, nil
}

// UpdateTableRow replaces every cell of a table-row block with
// single-segment plain text.
func (c *Client) UpdateTableRow(ctx context.Context, rowID string, cells []string) error {
	wire := make([][]richText, len(cells))
	for i, cell := range cells {
		wire[i] = textSegments(cell)
	}
	req := updateRowRequest{TableRow: tableRowUpdate{Cells: wire}}
	if err := c.do(ctx, http.MethodPatch, "/v1/blocks/"+rowID, req, nil); err != nil {
		return fmt.Errorf("update table row %s: %w", rowID, err)
	}
	return nil
}

// UpdateRecordField replaces one rich-text property of a record page.
func (c *Client) UpdateRecordField(ctx context.Context, recordID, field, value string) error {
	req := updatePageRequest{
		Properties: map[string]propertyUpdate{
			field: {RichText: textSegments(value)},
		},
	}
	if err := c.do(ctx, http.MethodPatch, "/v1/pages/"+recordID, req, nil); err != nil {
		return fmt.Errorf("update record %s: %w", recordID, err)
	}
	return nil
}

// do executes one API request under the rate limiter.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			if resp.StatusCode == http.StatusTooManyRequests {
				return fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErr.Message)
			}
			return fmt.Errorf("notion %s (status %d): %s", apiErr.Code, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("notion error (status %d): %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// toContainer maps a wire block onto the closed container variant set.
func (b block) toContainer() domain.Container {
	c := domain.Container{ID: b.ID, Kind: domain.KindOther}

	switch {
	case b.Type == "child_page":
		c.Kind = domain.KindPage
		if b.ChildPage != nil {
			c.Title = b.ChildPage.Title
		}
	case b.Type == "child_database":
		c.Kind = domain.KindCollection
		if b.ChildDatabase != nil {
			c.Title = b.ChildDatabase.Title
		}
	case b.Type == "table":
		c.Kind = domain.KindTable
	case b.Type == "table_row":
		c.Kind = domain.KindTableRow
		if b.TableRow != nil {
			c.Cells = make([]string, len(b.TableRow.Cells))
			for i, cell := range b.TableRow.Cells {
				c.Cells[i] = plainText(cell)
			}
		}
	case b.Type == "toggle" || strings.Contains(b.Type, "_toggle"):
		c.Kind = domain.KindToggle
		if b.Toggle != nil {
			c.Title = plainText(b.Toggle.RichText)
		}
	}
	return c
}
