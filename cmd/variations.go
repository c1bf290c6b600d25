package cmd

import (
	"github.com/spf13/cobra"
)

// variationsCmd represents the variations command
var variationsCmd = &cobra.Command{
	Use:   "variations",
	Short: "Read or replace the variations of a configurable product",
}

var variationsGetCmd = &cobra.Command{
	Use:   "get [sku]",
	Short: "List the simple product SKUs linked to a configurable product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.catalogService().GetConfigurableVariations(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var variationsSetCmd = &cobra.Command{
	Use:   "set [sku] [variation-sku]...",
	Short: "Replace the variations of a configurable product",
	Long: `Links the given simple product SKUs to the configurable product, replacing
its existing variations. SKUs that cannot be found are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.catalogService().SetConfigurableVariations(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	RootCmd.AddCommand(variationsCmd)
	variationsCmd.AddCommand(variationsGetCmd, variationsSetCmd)
}
