package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
	"github.com/kotoba-labs/reibun-cli/internal/logger"
)

// AuditFinding names one row flagged by the audit pass.
type AuditFinding struct {
	Page string
	Term string

	// Detail carries finding-specific context, such as the expected
	// reading for a romaji mismatch.
	Detail string
}

// AuditReport is the outcome of one audit pass.
type AuditReport struct {
	// MissingExamples lists eligible rows whose example field is empty.
	MissingExamples []AuditFinding

	// Toggles lists collapsible blocks that hide content from the
	// pipeline; their vocabulary is invisible until moved into a table.
	Toggles []AuditFinding

	// RomajiMismatches lists example blocks whose romaji line disagrees
	// with the morphological reading of the script line.
	RomajiMismatches []AuditFinding

	// Malformed lists populated example fields that violate the
	// three-line grammar.
	Malformed []AuditFinding
}

// Empty reports whether the audit found nothing.
func (r AuditReport) Empty() bool {
	return len(r.MissingExamples) == 0 && len(r.Toggles) == 0 &&
		len(r.RomajiMismatches) == 0 && len(r.Malformed) == 0
}

// Auditor inspects the content tree without mutating it.
// The reading analyzer is optional; without it the romaji check is
// skipped.
type Auditor struct {
	traverser *Traverser
	reader    driven.ReadingAnalyzer
	parentID  string
}

// NewAuditor creates an auditor. reader may be nil.
func NewAuditor(traverser *Traverser, reader driven.ReadingAnalyzer, parentID string) *Auditor {
	return &Auditor{traverser: traverser, reader: reader, parentID: parentID}
}

// Run audits every page under the parent container. Traversal failures
// are fatal, matching the pipeline's propagation policy.
func (a *Auditor) Run(ctx context.Context, source SourceKind) (AuditReport, error) {
	var report AuditReport

	pages, err := a.traverser.Pages(ctx, a.parentID)
	if err != nil {
		return report, err
	}

	for _, page := range pages {
		logger.Section(page.Title)
		content, err := a.traverser.Children(ctx, page.ID)
		if err != nil {
			return report, fmt.Errorf("list page %q: %w", page.Title, err)
		}

		for _, c := range content {
			if c.Kind == domain.KindToggle {
				report.Toggles = append(report.Toggles, AuditFinding{
					Page:   page.Title,
					Detail: c.Title,
				})
			}
		}

		var rows []domain.Row
		switch source {
		case SourceDatabases:
			rows, err = a.traverser.PageDatabaseRows(ctx, content)
		default:
			rows, err = a.traverser.PageTableRows(ctx, content)
		}
		if err != nil {
			return report, err
		}

		for _, row := range rows {
			if !row.Eligible() {
				continue
			}
			a.auditRow(page.Title, row, &report)
		}
	}
	return report, nil
}

func (a *Auditor) auditRow(page string, row domain.Row, report *AuditReport) {
	if row.Example == "" {
		report.MissingExamples = append(report.MissingExamples, AuditFinding{
			Page: page,
			Term: row.Kanji,
		})
		return
	}

	examples, err := domain.ParseExamples(row.Example)
	if err != nil {
		report.Malformed = append(report.Malformed, AuditFinding{
			Page:   page,
			Term:   row.Kanji,
			Detail: err.Error(),
		})
		return
	}

	if a.reader == nil {
		return
	}
	for _, ex := range examples {
		want, err := a.reader.Reading(ex.Script)
		if err != nil {
			logger.Warn("reading analysis failed for %q: %v", row.Kanji, err)
			continue
		}
		if foldRomaji(want) != foldRomaji(ex.Romaji) {
			report.RomajiMismatches = append(report.RomajiMismatches, AuditFinding{
				Page:   page,
				Term:   row.Kanji,
				Detail: fmt.Sprintf("romaji %q does not read as %q", ex.Romaji, want),
			})
		}
	}
}

// foldRomaji reduces a romaji line to bare lowercase letters so the
// comparison ignores spacing, punctuation and macron variants.
func foldRomaji(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'ā':
			b.WriteString("aa")
		case 'ī':
			b.WriteString("ii")
		case 'ū':
			b.WriteString("uu")
		case 'ē':
			b.WriteString("ee")
		case 'ō':
			b.WriteString("ou")
		default:
			if unicode.IsLetter(r) && r < unicode.MaxASCII {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
