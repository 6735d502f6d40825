package notion

import "strings"

// Wire types for the subset of the Notion API this pipeline consumes.

// richText is one segment of a rich-text array. Responses carry
// plain_text; update requests carry text.content.
type richText struct {
	Type      string       `json:"type"`
	PlainText string       `json:"plain_text,omitempty"`
	Text      *textContent `json:"text,omitempty"`
}

type textContent struct {
	Content string `json:"content"`
}

// plainText joins a rich-text array into one string, in segment order.
func plainText(segments []richText) string {
	var b strings.Builder
	for _, s := range segments {
		if s.PlainText != "" {
			b.WriteString(s.PlainText)
		} else if s.Text != nil {
			b.WriteString(s.Text.Content)
		}
	}
	return b.String()
}

// textSegments wraps a plain string into a single-segment rich-text
// array for update requests.
func textSegments(s string) []richText {
	return []richText{{Type: "text", Text: &textContent{Content: s}}}
}

// block is one child block from a children listing.
type block struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	ChildPage *struct {
		Title string `json:"title"`
	} `json:"child_page,omitempty"`

	ChildDatabase *struct {
		Title string `json:"title"`
	} `json:"child_database,omitempty"`

	TableRow *tableRowPayload `json:"table_row,omitempty"`

	Toggle *struct {
		RichText []richText `json:"rich_text"`
	} `json:"toggle,omitempty"`
}

type tableRowPayload struct {
	Cells [][]richText `json:"cells"`
}

type listChildrenResponse struct {
	Results    []block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// databaseResponse carries the data-source descriptors of a database.
type databaseResponse struct {
	ID          string `json:"id"`
	DataSources []struct {
		ID string `json:"id"`
	} `json:"data_sources"`
}

// queryRequest is the body of a data-source query.
type queryRequest struct {
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// property is one typed record property. Only rich_text and title
// properties feed the pipeline; other types are ignored.
type property struct {
	Type     string     `json:"type"`
	RichText []richText `json:"rich_text,omitempty"`
	Title    []richText `json:"title,omitempty"`
}

type queryResponse struct {
	Results []struct {
		ID         string              `json:"id"`
		Properties map[string]property `json:"properties"`
	} `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// updateRowRequest replaces the full cell set of a table row.
type updateRowRequest struct {
	TableRow tableRowUpdate `json:"table_row"`
}

type tableRowUpdate struct {
	Cells [][]richText `json:"cells"`
}

// updatePageRequest replaces named properties of a record page.
type updatePageRequest struct {
	Properties map[string]propertyUpdate `json:"properties"`
}

type propertyUpdate struct {
	RichText []richText `json:"rich_text"`
}

// apiError is the Notion error envelope.
type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
