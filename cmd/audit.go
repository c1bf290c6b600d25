package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadFlag bool

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit catalog data",
}

var auditVariationsCmd = &cobra.Command{
	Use:   "variations",
	Short: "Find configurable products with dangling variation links",
	Long: `Resolves the variations of every configurable product and reports those with
links to missing simple products. With --upload the JSON report is stored in the bucket.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		report, err := e.catalogService().AuditVariations(cmd.Context(), uploadFlag)
		if err != nil {
			return fmt.Errorf("variation audit failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n=== Variation Audit ===")
		fmt.Fprintf(out, "Configurable Products: %d\n", report.Scanned)
		fmt.Fprintf(out, "Healthy: %d\n", report.Healthy)
		fmt.Fprintf(out, "Dangling Links: %d\n", report.Dangling)
		fmt.Fprintf(out, "No Resolvable Variations: %d\n", report.Broken)
		if report.ReindexSuggested {
			fmt.Fprintln(out, "Reindex suggested.")
		}
		if report.ObjectKey != "" {
			fmt.Fprintf(out, "Report uploaded to: %s/%s\n", e.cfg.Storage.Bucket, report.ObjectKey)
		}

		e.logger.Info("Variation audit finished", zap.Duration("execution_time", time.Since(startTime)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditVariationsCmd)
	auditVariationsCmd.Flags().BoolVar(&uploadFlag, "upload", false, "Upload the JSON report to storage")
}
