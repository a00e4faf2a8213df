package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/quarterly"
)

// InfoResult is the payload for the info command: every boundary of the
// quarter containing the input, plus the adjacent quarter starts.
type InfoResult struct {
	Input         string `json:"input"`
	Zone          string `json:"zone,omitempty"`
	Quarter       string `json:"quarter"`
	Start         string `json:"start"`
	End           string `json:"end"`
	NextStart     string `json:"next_start"`
	PreviousStart string `json:"previous_start"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <rfc3339-timestamp>",
		Short: "Print all quarter boundaries around a timestamp",
		Long: `Prints the quarter containing the timestamp together with its start,
its end, and the starts of the adjacent quarters.

The timestamp must be RFC 3339 (e.g. 2024-02-15T10:00:00Z).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}
}

func runInfo(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	input, err := parseTimestamp(arg)
	if err != nil {
		return outputCommandError(formatter, ErrCodeBadTimestamp, err.Error())
	}

	result := &InfoResult{Input: arg, Zone: opts.Zone}

	if opts.Zone == "" {
		result.Quarter = quarterly.QuarterOf(input).String()
		result.Start = quarterly.StartOfQuarter(input).Format(time.RFC3339Nano)
		result.End = quarterly.EndOfQuarter(input).Format(time.RFC3339Nano)
		result.NextStart = quarterly.StartOfNextQuarter(input).Format(time.RFC3339Nano)
		result.PreviousStart = quarterly.StartOfPreviousQuarter(input).Format(time.RFC3339Nano)
	} else {
		loc, err := resolveZone(opts, formatter)
		if err != nil {
			return err
		}
		result.Quarter = quarterly.QuarterOf(input.UTC().In(loc)).String()
		if result.Start, err = zoneField(formatter, quarterly.StartOfZoneQuarter, input, loc); err != nil {
			return err
		}
		if result.End, err = zoneField(formatter, quarterly.EndOfZoneQuarter, input, loc); err != nil {
			return err
		}
		if result.NextStart, err = zoneField(formatter, quarterly.StartOfNextZoneQuarter, input, loc); err != nil {
			return err
		}
		if result.PreviousStart, err = zoneField(formatter, quarterly.StartOfPreviousZoneQuarter, input, loc); err != nil {
			return err
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	if result.Zone != "" {
		fmt.Fprintf(formatter.Writer, "%-17s%s\n", "Zone:", result.Zone)
	}
	fmt.Fprintf(formatter.Writer, "%-17s%s\n", "Quarter:", result.Quarter)
	fmt.Fprintf(formatter.Writer, "%-17s%s\n", "Start:", result.Start)
	fmt.Fprintf(formatter.Writer, "%-17s%s\n", "End:", result.End)
	fmt.Fprintf(formatter.Writer, "%-17s%s\n", "Next start:", result.NextStart)
	fmt.Fprintf(formatter.Writer, "%-17s%s\n", "Previous start:", result.PreviousStart)
	return nil
}

// zoneField formats one zone-aware boundary for the info payload.
func zoneField(formatter *OutputFormatter, op func(time.Time, *time.Location) (time.Time, error), input time.Time, loc *time.Location) (string, error) {
	boundary, err := op(input, loc)
	if err != nil {
		return "", outputBoundaryError(formatter, err)
	}
	return boundary.Format(time.RFC3339Nano), nil
}
