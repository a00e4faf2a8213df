package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/quarterly"
)

// BoundaryResult is the payload for single-boundary commands.
type BoundaryResult struct {
	Operation string `json:"operation"`
	Input     string `json:"input"`
	Zone      string `json:"zone,omitempty"`
	Quarter   string `json:"quarter"`
	Boundary  string `json:"boundary"`
}

// plainBoundaryOps maps operation names to the offset-preserving surface.
var plainBoundaryOps = map[string]func(time.Time) time.Time{
	"start":    quarterly.StartOfQuarter,
	"end":      quarterly.EndOfQuarter,
	"next":     quarterly.StartOfNextQuarter,
	"previous": quarterly.StartOfPreviousQuarter,
}

// zoneBoundaryOps maps operation names to the zone-aware surface.
var zoneBoundaryOps = map[string]func(time.Time, *time.Location) (time.Time, error){
	"start":    quarterly.StartOfZoneQuarter,
	"end":      quarterly.EndOfZoneQuarter,
	"next":     quarterly.StartOfNextZoneQuarter,
	"previous": quarterly.StartOfPreviousZoneQuarter,
}

// NewStartCommand creates the start command.
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	return newBoundaryCommand(rootOpts, "start",
		"Print the start of the quarter containing a timestamp",
		"First instant (local midnight on Jan/Apr/Jul/Oct 1) of the containing quarter.")
}

// NewEndCommand creates the end command.
func NewEndCommand(rootOpts *RootOptions) *cobra.Command {
	return newBoundaryCommand(rootOpts, "end",
		"Print the end of the quarter containing a timestamp",
		"Last representable instant of the containing quarter, one nanosecond before the next quarter starts.")
}

// NewNextCommand creates the next command.
func NewNextCommand(rootOpts *RootOptions) *cobra.Command {
	return newBoundaryCommand(rootOpts, "next",
		"Print the start of the quarter after the one containing a timestamp",
		"Quarter start advanced by exactly three calendar months, rolling Q4 into the next year.")
}

// NewPreviousCommand creates the previous command.
func NewPreviousCommand(rootOpts *RootOptions) *cobra.Command {
	return newBoundaryCommand(rootOpts, "previous",
		"Print the start of the quarter before the one containing a timestamp",
		"Quarter start moved back by exactly three calendar months, rolling Q1 into the previous year.")
}

func newBoundaryCommand(rootOpts *RootOptions, op, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:           op + " <rfc3339-timestamp>",
		Short:         short,
		Long:          long + "\n\nThe timestamp must be RFC 3339 (e.g. 2024-02-15T10:00:00Z).",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoundary(rootOpts, op, args[0], cmd)
		},
	}
}

func runBoundary(opts *RootOptions, op, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	input, err := parseTimestamp(arg)
	if err != nil {
		return outputCommandError(formatter, ErrCodeBadTimestamp, err.Error())
	}

	result, err := computeBoundary(opts, formatter, op, input, arg)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintln(formatter.Writer, result.Boundary)
	return nil
}

// computeBoundary runs one named operation against either surface of the
// library, depending on whether a zone was requested.
func computeBoundary(opts *RootOptions, formatter *OutputFormatter, op string, input time.Time, arg string) (*BoundaryResult, error) {
	result := &BoundaryResult{
		Operation: op,
		Input:     arg,
		Zone:      opts.Zone,
	}

	if opts.Zone == "" {
		result.Quarter = quarterly.QuarterOf(input).String()
		result.Boundary = plainBoundaryOps[op](input).Format(time.RFC3339Nano)
		return result, nil
	}

	loc, err := resolveZone(opts, formatter)
	if err != nil {
		return nil, err
	}

	boundary, err := zoneBoundaryOps[op](input, loc)
	if err != nil {
		return nil, outputBoundaryError(formatter, err)
	}

	result.Quarter = quarterly.QuarterOf(input.UTC().In(loc)).String()
	result.Boundary = boundary.Format(time.RFC3339Nano)
	return result, nil
}

// newFormatter builds the standard formatter for a command invocation.
// Verbose logs go to stderr to avoid corrupting JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// parseTimestamp parses an RFC 3339 timestamp argument.
func parseTimestamp(arg string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("not an RFC 3339 timestamp: %q", arg)
	}
	return t, nil
}

// resolveZone resolves the --zone flag through a fresh resolver. The CLI
// is one-shot, so there is no cache worth carrying between invocations.
func resolveZone(opts *RootOptions, formatter *OutputFormatter) (*time.Location, error) {
	loc, err := quarterly.NewResolver().Resolve(opts.Zone)
	if err != nil {
		return nil, outputCommandError(formatter, ErrCodeInvalidZone, err.Error())
	}
	formatter.VerboseLog("resolved zone %s", loc)
	return loc, nil
}

// outputCommandError reports a bad-input error and returns the matching
// ExitError (exit code 2).
func outputCommandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputBoundaryError maps a library error to CLI output and exit code:
// invalid zone is a command error, out-of-range a computation failure.
func outputBoundaryError(formatter *OutputFormatter, err error) error {
	switch {
	case quarterly.IsInvalidZone(err):
		return outputCommandError(formatter, ErrCodeInvalidZone, err.Error())
	case quarterly.IsOutOfRange(err):
		_ = formatter.Error(ErrCodeOutOfRange, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeOutOfRange, err)
	default:
		_ = formatter.Error(ErrCodeOutOfRange, err.Error(), nil)
		return WrapExitError(ExitFailure, "boundary computation failed", err)
	}
}
