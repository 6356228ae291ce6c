package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CloudFitSoftware/clean-code-exercises/internal/summary"
)

const (
	formatJSON = "json"
	formatText = "text"
)

func summarizeCmd(env *runEnv) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summarize [flags] FILE.csv...",
		Short: "Summarize CSV files of people by age range, name, and city",
		Long: `Summarize one or more CSV files with a header row (Name, Age, City, ...).

The report holds the total row count, counts per age range (20-29, 30-39, 40-49, 50+), and counts per
name and per city, each with its percentage of all rows.`,
		Example: `  ccx summarize people.csv
  ccx summarize --format text a.csv b.csv`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatText {
				return usageErrorf("--format must be %s or %s, got %q", formatJSON, formatText, format)
			}

			records, err := summary.Load(cmd.Context(), args...)
			if err != nil {
				return err
			}
			report := summary.Summarize(records)
			env.logger.Info("summarized",
				zap.Int("files", len(args)),
				zap.Int("rows", report.TotalRows),
				zap.Int("names", len(report.NameSummary)),
				zap.Int("cities", len(report.CitySummary)),
			)

			if format == formatText {
				return report.WriteText(env.out)
			}
			return report.WriteJSON(env.out)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format: json, text")

	return cmd
}
