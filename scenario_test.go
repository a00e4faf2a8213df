package quarterly

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// boundaryScenario is a single conformance case loaded from
// testdata/scenarios. Cases with an empty zone exercise the
// offset-preserving surface and are compared textually, so the input's
// offset must survive into the result; zone cases exercise the
// zone-aware surface and compare instants.
type boundaryScenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Input is the RFC 3339 timestamp handed to the operation.
	Input string `yaml:"input"`

	// Zone is an IANA zone name. Empty means the offset-preserving
	// operation is used.
	Zone string `yaml:"zone,omitempty"`

	// Op selects the operation: start, end, next_start, previous_start,
	// next_end, previous_end.
	Op string `yaml:"op"`

	// Want is the expected RFC 3339 boundary.
	Want string `yaml:"want"`
}

type scenarioFile struct {
	Scenarios []boundaryScenario `yaml:"scenarios"`
}

func loadScenarios(t *testing.T, path string) []boundaryScenario {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err, "reading scenario file %s", path)

	var file scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &file), "parsing scenario file %s", path)
	require.NotEmpty(t, file.Scenarios, "scenario file %s has no scenarios", path)
	return file.Scenarios
}

var plainOps = map[string]func(time.Time) time.Time{
	"start":          StartOfQuarter,
	"end":            EndOfQuarter,
	"next_start":     StartOfNextQuarter,
	"previous_start": StartOfPreviousQuarter,
	"next_end":       EndOfNextQuarter,
	"previous_end":   EndOfPreviousQuarter,
}

var zoneOps = map[string]func(time.Time, *time.Location) (time.Time, error){
	"start":          StartOfZoneQuarter,
	"end":            EndOfZoneQuarter,
	"next_start":     StartOfNextZoneQuarter,
	"previous_start": StartOfPreviousZoneQuarter,
	"next_end":       EndOfNextZoneQuarter,
	"previous_end":   EndOfPreviousZoneQuarter,
}

func TestScenarios_OffsetPreserving(t *testing.T) {
	scenarios := loadScenarios(t, filepath.Join("testdata", "scenarios", "boundaries.yaml"))

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			require.Empty(t, sc.Zone, "boundaries.yaml must not carry zone cases")
			op, ok := plainOps[sc.Op]
			require.True(t, ok, "unknown op %q", sc.Op)

			in, err := time.Parse(time.RFC3339Nano, sc.Input)
			require.NoError(t, err)

			got := op(in)

			// Textual comparison checks the offset survived, not just
			// the instant.
			assert.Equal(t, sc.Want, got.Format(time.RFC3339Nano), sc.Description)
		})
	}
}

func TestScenarios_ZoneAware(t *testing.T) {
	scenarios := loadScenarios(t, filepath.Join("testdata", "scenarios", "zones.yaml"))
	resolver := NewResolver()

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			require.NotEmpty(t, sc.Zone, "zones.yaml cases must name a zone")
			op, ok := zoneOps[sc.Op]
			require.True(t, ok, "unknown op %q", sc.Op)

			loc, err := resolver.Resolve(sc.Zone)
			require.NoError(t, err)

			in, err := time.Parse(time.RFC3339Nano, sc.Input)
			require.NoError(t, err)
			want, err := time.Parse(time.RFC3339Nano, sc.Want)
			require.NoError(t, err)

			got, err := op(in, loc)
			require.NoError(t, err)
			assert.True(t, want.Equal(got),
				"%s: want %s, got %s", sc.Description, sc.Want, got.Format(time.RFC3339Nano))
		})
	}
}
