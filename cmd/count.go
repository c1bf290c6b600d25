package cmd

import (
	"fmt"

	"catalog-webservice/core/utils"

	"github.com/spf13/cobra"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count catalog products",
}

var countProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Count all catalog products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		n, err := e.catalogService().GetCatalogProductCount(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

var countCategoryCmd = &cobra.Command{
	Use:   "category [id]",
	Short: "Count the products of a category (0 when it does not exist)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer e.Close()

		n, err := e.catalogService().GetCategoryProductCount(cmd.Context(), utils.ToInt(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(countCmd)
	countCmd.AddCommand(countProductsCmd, countCategoryCmd)
}
