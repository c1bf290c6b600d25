package cmd

import (
	"github.com/spf13/cobra"
)

// attributesCmd represents the attributes command
var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "Show the attributes of a configurable product",
}

var attributesConfigurableCmd = &cobra.Command{
	Use:   "configurable [sku]",
	Short: "Show the attributes a configurable product varies on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.catalogService().GetConfigurableAttributes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var attributesUsedCmd = &cobra.Command{
	Use:   "used [sku]",
	Short: "Show the EAV attributes used by a configurable product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.catalogService().GetUsedProductAttributes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	RootCmd.AddCommand(attributesCmd)
	attributesCmd.AddCommand(attributesConfigurableCmd, attributesUsedCmd)
}
