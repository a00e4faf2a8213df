package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden snapshots of CLI output. To regenerate after an intentional
// format change:
//
//	go test ./internal/cli -update
func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGolden_InfoText(t *testing.T) {
	out, _, err := executeCommand(t, "info", "2024-02-15T10:00:00Z")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "info_q1_text", []byte(out))
}

func TestGolden_InfoJSON(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "info", "2024-02-15T10:00:00Z")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "info_q1_json", []byte(out))
}

func TestGolden_TableJSON_NewYork(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "--zone", "America/New_York", "table", "2024")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "table_2024_new_york_json", []byte(out))
}
