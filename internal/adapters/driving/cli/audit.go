package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
	"github.com/kotoba-labs/reibun-cli/internal/core/services"
	"github.com/kotoba-labs/reibun-cli/internal/romaji"
)

var (
	auditSource string
	auditRomaji bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report rows with missing or suspect examples, without writing",
	Long: `Inspects the content tree and reports rows whose example field is
empty, pages still hiding content inside toggle blocks, populated
example fields that violate the three-line grammar, and (with --romaji)
romaji lines that disagree with the morphological reading of the
Japanese line. Nothing is mutated.`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditSource, "source", "tables", "store representation to read: tables or databases")
	auditCmd.Flags().BoolVar(&auditRomaji, "romaji", false, "check romaji lines against dictionary readings")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	source, err := sourceKind(auditSource)
	if err != nil {
		return err
	}

	store, err := buildStore()
	if err != nil {
		return err
	}

	var reader driven.ReadingAnalyzer
	if auditRomaji {
		analyzer, err := romaji.NewAnalyzer()
		if err != nil {
			return fmt.Errorf("load reading dictionary: %w", err)
		}
		reader = analyzer
	}

	traverser := services.NewTraverser(store, notesFilter())
	auditor := services.NewAuditor(traverser, reader, cfg.Notion.ParentPageID)

	report, err := auditor.Run(context.Background(), source)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if report.Empty() {
		cmd.Println("clean: every row has a well-formed example and no toggles were found")
		return nil
	}

	printFindings(cmd, "Rows without examples", report.MissingExamples)
	printFindings(cmd, "Malformed example fields", report.Malformed)
	printFindings(cmd, "Toggle blocks hiding content", report.Toggles)
	printFindings(cmd, "Romaji mismatches", report.RomajiMismatches)
	return nil
}

func printFindings(cmd *cobra.Command, title string, findings []services.AuditFinding) {
	if len(findings) == 0 {
		return
	}
	cmd.Printf("%s (%d):\n", title, len(findings))
	for _, f := range findings {
		switch {
		case f.Term != "" && f.Detail != "":
			cmd.Printf("  [%s] %s: %s\n", f.Page, f.Term, f.Detail)
		case f.Term != "":
			cmd.Printf("  [%s] %s\n", f.Page, f.Term)
		default:
			cmd.Printf("  [%s] %s\n", f.Page, f.Detail)
		}
	}
	cmd.Println()
}
