package commands

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/hookitup/internal/catalog"
	"github.com/leapstack-labs/hookitup/internal/cli/testutil"
)

func TestVersionCommand(t *testing.T) {
	app := catalog.DefaultAppInfo()
	catalogLine := fmt.Sprintf("Catalog v%s, %d hooks (updated %s)", app.Version, catalog.Default().Len(), app.LastUpdated)

	for _, version := range []string{"0.1.0", "1.2.3", "dev"} {
		t.Run(version, func(t *testing.T) {
			res := testutil.RunCommand(t, NewVersionCommand(version))
			require.NoError(t, res.Err)
			assert.Equal(t, "HookItUp v"+version+"\n"+catalogLine+"\n", res.Out)
		})
	}
}

func TestVersionCommand_IgnoresOutputMode(t *testing.T) {
	useConfig(t, map[string]string{"HOOKITUP_OUTPUT": "json"})
	res := testutil.RunCommand(t, NewVersionCommand("0.1.0"))
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "HookItUp v0.1.0")
}
