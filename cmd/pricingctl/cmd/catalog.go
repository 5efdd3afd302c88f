package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
)

func newCatalogCmd(loadEngine func() (*pricing.Engine, error)) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "catalog",
		Short: "Print the pricing catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine()
			if err != nil {
				return err
			}

			catalog := engine.Catalog()
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			case "text":
				fmt.Fprintf(out, "catalog %s (%s)\n\n", catalog.Version, catalog.Currency)

				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "SERVICE\tTITLE\tBASE PRICE")
				for _, s := range catalog.Services {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", s.ID, s.Title, s.BasePrice)
				}
				fmt.Fprintln(tw)
				fmt.Fprintln(tw, "DURATION\tLABEL\tMULTIPLIER")
				for _, d := range catalog.Durations {
					fmt.Fprintf(tw, "%s\t%s\t%g\n", d.Code, d.Label, d.Multiplier)
				}
				fmt.Fprintln(tw)
				fmt.Fprintln(tw, "MIN DAYS\tFACTOR\t")
				for _, d := range catalog.Discounts {
					fmt.Fprintf(tw, "%d\t%g\t\n", d.MinDays, d.Factor)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q (use text or json)", format)
			}
		},
	}

	c.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return c
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog-file>",
		Short: "Check a catalog file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := pricing.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s is valid: %d services, %d durations, %d discounts\n",
				c.Version, len(c.Services), len(c.Durations), len(c.Discounts))
			return nil
		},
	}
}
