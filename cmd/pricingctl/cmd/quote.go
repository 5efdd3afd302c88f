package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
)

type quoteOutput struct {
	Service        string `json:"service"`
	ServiceTitle   string `json:"serviceTitle"`
	Duration       string `json:"duration"`
	Days           int    `json:"days"`
	BasePrice      int64  `json:"basePrice"`
	Multiplier     string `json:"multiplier"`
	Subtotal       string `json:"subtotal"`
	DiscountFactor string `json:"discountFactor"`
	Price          int64  `json:"price"`
}

func newQuoteCmd(loadEngine func() (*pricing.Engine, error)) *cobra.Command {
	var (
		service  string
		duration string
		days     int
		format   string
	)

	c := &cobra.Command{
		Use:   "quote",
		Short: "Calculate the price of a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 || days > domain.MaxBookingDays {
				return fmt.Errorf("--days must be between 1 and %d, got %d", domain.MaxBookingDays, days)
			}

			engine, err := loadEngine()
			if err != nil {
				return err
			}

			q, err := engine.Quote(service, duration, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(quoteOutput{
					Service:        q.Service,
					ServiceTitle:   q.ServiceTitle,
					Duration:       q.Duration,
					Days:           q.Days,
					BasePrice:      q.BasePrice,
					Multiplier:     q.Multiplier.String(),
					Subtotal:       q.Subtotal.String(),
					DiscountFactor: q.DiscountFactor.String(),
					Price:          q.Price,
				})
			case "text":
				fmt.Fprintf(out, "%s, %s hours x %d days\n", q.ServiceTitle, q.Duration, q.Days)
				fmt.Fprintf(out, "  base price:  %d\n", q.BasePrice)
				fmt.Fprintf(out, "  multiplier:  %s\n", q.Multiplier.String())
				fmt.Fprintf(out, "  subtotal:    %s\n", q.Subtotal.String())
				fmt.Fprintf(out, "  discount:    x%s\n", q.DiscountFactor.String())
				fmt.Fprintf(out, "  total:       %d\n", q.Price)
				return nil
			default:
				return fmt.Errorf("unknown format %q (use text or json)", format)
			}
		},
	}

	c.Flags().StringVar(&service, "service", "", "service id (e.g. post_op)")
	c.Flags().StringVar(&duration, "duration", "", "hours per day (e.g. 8)")
	c.Flags().IntVar(&days, "days", 1, "number of days")
	c.Flags().StringVar(&format, "format", "text", "output format: text or json")
	_ = c.MarkFlagRequired("service")
	_ = c.MarkFlagRequired("duration")

	return c
}
