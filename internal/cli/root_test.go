package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "quarterly", cmd.Use)
	assert.Contains(t, cmd.Long, "quarter boundaries")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"start", "end", "next", "previous", "info", "table"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	zoneFlag := cmd.PersistentFlags().Lookup("zone")
	require.NotNil(t, zoneFlag)
	assert.Equal(t, "", zoneFlag.DefValue)
}

func TestInvalidFormatRejected(t *testing.T) {
	_, _, err := executeCommand(t, "--format", "xml", "start", "2024-02-15T10:00:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}
