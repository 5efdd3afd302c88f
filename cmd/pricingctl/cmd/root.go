// Package cmd команды pricingctl
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
)

// NewRootCmd собирает дерево команд. Вывод идет в cmd.OutOrStdout().
func NewRootCmd() *cobra.Command {
	var catalogFile string

	root := &cobra.Command{
		Use:   "pricingctl",
		Short: "Quote home nursing prices from the pricing catalog",
		Long: `pricingctl uses the same price engine as the booking API.

Examples:
  pricingctl quote --service post_op --duration 8 --days 10
  pricingctl catalog --format json
  pricingctl validate ./catalog.toml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog TOML file (default: built-in catalog)")

	loadEngine := func() (*pricing.Engine, error) {
		if catalogFile == "" {
			return pricing.NewDefaultEngine()
		}
		c, err := pricing.LoadFile(catalogFile)
		if err != nil {
			return nil, err
		}
		return pricing.NewEngine(c)
	}

	root.AddCommand(newQuoteCmd(loadEngine))
	root.AddCommand(newCatalogCmd(loadEngine))
	root.AddCommand(newValidateCmd())

	return root
}

// Execute запускает CLI
func Execute() error {
	return NewRootCmd().Execute()
}
