package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/config"
	"github.com/CloudFitSoftware/clean-code-exercises/internal/shipping"
	"github.com/CloudFitSoftware/clean-code-exercises/internal/textfmt"
)

const dateLayout = "2006-01-02"

func shipCmd(env *runEnv) *cobra.Command {
	var (
		speed     string
		region    string
		weight    float64
		date      string
		legacy    bool
		ratesFile string
		explain   bool
	)

	cmd := &cobra.Command{
		Use:   "ship --weight KG [flags]",
		Short: "Calculate a shipping rate",
		Long: `Calculate the shipping rate for one shipment and print it (for example 21.45).

By default every weekend shipment is surcharged. With --legacy (or CCX_WEEKEND_POLICY=international),
only International weekend shipments are surcharged.`,
		Example: `  ccx ship --speed express --region international --weight 3.5 --date 2024-03-16
  ccx ship --weight 2 --explain`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("weight") {
				return usageErrorf("--weight is required")
			}
			req, err := parseShipRequest(speed, region, weight, date)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("rates") {
				ratesFile = env.cfg.RatesFile
			}
			table, err := shipping.LoadRateTableFile(ratesFile)
			if err != nil {
				return err
			}

			calc := shipping.NewCalculator(table)
			if legacy || env.cfg.WeekendPolicy == config.WeekendPolicyInternational {
				calc = shipping.NewLegacyCalculator(table)
			}

			steps := calc.Breakdown(req)
			total := calc.Calculate(req)
			env.logger.Debug("rate calculated",
				zap.Stringer("speed", req.Speed),
				zap.Stringer("region", req.Region),
				zap.Float64("weight_kg", req.WeightKg),
				zap.Bool("weekend", req.OnWeekend()),
				zap.Stringer("total", total),
			)

			if explain {
				_, err = fmt.Fprint(env.out, formatBreakdown(steps))
				return err
			}
			_, err = fmt.Fprintln(env.out, total)
			return err
		},
	}

	cmd.Flags().StringVar(&speed, "speed", shipping.Standard.String(), "Delivery speed: standard, express, overnight")
	cmd.Flags().StringVar(&region, "region", shipping.Domestic.String(), "Destination region: domestic, international")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Package weight in kg (required)")
	cmd.Flags().StringVar(&date, "date", "", "Ship date as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "Surcharge only International weekend shipments")
	cmd.Flags().StringVar(&ratesFile, "rates", "", "YAML rate table (default: CCX_RATES_FILE or built-in rates)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print the running total after each policy")

	return cmd
}

func parseShipRequest(speed, region string, weight float64, date string) (shipping.Request, error) {
	s, err := shipping.ParseSpeed(speed)
	if err != nil {
		return shipping.Request{}, UsageError{Err: err}
	}
	r, err := shipping.ParseRegion(region)
	if err != nil {
		return shipping.Request{}, UsageError{Err: err}
	}
	if weight < 0 {
		return shipping.Request{}, usageErrorf("--weight must not be negative, got %v", weight)
	}

	shipDate := time.Now()
	if date != "" {
		shipDate, err = time.Parse(dateLayout, date)
		if err != nil {
			return shipping.Request{}, usageErrorf("--date must be YYYY-MM-DD, got %q", date)
		}
	}

	return shipping.Request{Speed: s, Region: r, WeightKg: weight, ShipDate: shipDate}, nil
}

func formatBreakdown(steps []shipping.Step) string {
	nameWidth, totalWidth := 0, 0
	for _, s := range steps {
		nameWidth = max(nameWidth, textfmt.Width(s.Policy))
		totalWidth = max(totalWidth, textfmt.Width(s.Total.String()))
	}

	var b strings.Builder
	for _, s := range steps {
		b.WriteString(textfmt.PadRight(s.Policy, nameWidth))
		b.WriteString("  ")
		b.WriteString(textfmt.PadLeft(s.Total.String(), totalWidth))
		b.WriteString("\n")
	}
	return b.String()
}
