package cmd

import (
	"fmt"

	"catalog-webservice/feature/catalog/models"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the catalog tables",
	Long: `Creates the catalog tables the service reads and writes. Intended for
development databases (e.g. sqlite); production catalogs are owned by the shop.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.db.WithContext(cmd.Context()).AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		e.logger.Info("Catalog tables migrated")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
