package cmd

import (
	"context"

	"catalog-webservice/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalog database and storage",
	Long:  `Checks that the catalog tables match the expected schema and that the report bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the report bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and folders")
}

func runIntegrityChecks(ctx context.Context, runSchema, runStorage bool) error {
	e, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer e.Close()
	logg := e.logger

	svc := integrity.NewService(e.storage, e.cfg.Storage.Bucket, e.cfg.Storage.Region,
		[]string{e.cfg.Catalog.ReportPrefix}, logg, e.db)

	if runStorage {
		logg.Info("Checking storage...", zap.String("bucket", e.cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			logg.Error("Storage check failed", zap.Error(err))
		} else if report.Healthy() {
			logg.Info("Storage is intact.")
		} else {
			logg.Warn("Storage is incomplete",
				zap.Bool("bucket_exists", report.BucketExists),
				zap.Strings("missing", report.Missing))

			if fixFlag {
				logg.Info("Fixing storage...")
				if err := svc.FixStorage(ctx, report); err != nil {
					return err
				}
				logg.Info("Storage fixed successfully.")
			} else {
				logg.Info("Run 'integrity storage --fix' to create them.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking catalog schema integrity...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
			return nil
		}
		if report.Matched {
			logg.Info("Catalog schema matches expected definition.")
			return nil
		}

		logg.Warn("Catalog schema mismatches found")
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if tblReport.Status == "missing" {
				logg.Warn("Missing Table", zap.String("table", table))
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, msg := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", msg))
		}
	}
	return nil
}
