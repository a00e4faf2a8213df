package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/quarterly"
)

// TableResult is the payload for the table command.
type TableResult struct {
	Year     int          `json:"year"`
	Zone     string       `json:"zone,omitempty"`
	Quarters []QuarterRow `json:"quarters"`
}

// QuarterRow is one quarter of the requested year.
type QuarterRow struct {
	Quarter string `json:"quarter"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table <year>",
		Short: "Print the four quarter boundaries of a year",
		Long: `Prints start and end instants for all four quarters of a year.

Without --zone, boundaries are UTC midnights; with --zone, they are the
zone's local midnights reported as UTC instants.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(rootOpts, args[0], cmd)
		},
	}
}

func runTable(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	year, err := strconv.Atoi(arg)
	if err != nil {
		return outputCommandError(formatter, ErrCodeBadYear, fmt.Sprintf("not a year: %q", arg))
	}

	loc := time.UTC
	if opts.Zone != "" {
		if loc, err = resolveZone(opts, formatter); err != nil {
			return err
		}
	}

	result := &TableResult{Year: year, Zone: opts.Zone}
	for index := 1; index <= 4; index++ {
		q := quarterly.Quarter{Year: year, Index: index}

		start, err := q.StartIn(loc)
		if err != nil {
			return outputBoundaryError(formatter, err)
		}
		end, err := q.EndIn(loc)
		if err != nil {
			return outputBoundaryError(formatter, err)
		}

		result.Quarters = append(result.Quarters, QuarterRow{
			Quarter: q.String(),
			Start:   start.UTC().Format(time.RFC3339Nano),
			End:     end.UTC().Format(time.RFC3339Nano),
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%-10s%-33s%s\n", "Quarter", "Start", "End")
	for _, row := range result.Quarters {
		fmt.Fprintf(formatter.Writer, "%-10s%-33s%s\n", row.Quarter, row.Start, row.End)
	}
	return nil
}
