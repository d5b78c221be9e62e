package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mocapprep/internal/logger"
)

func TestRootCmd_Commands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"extract", "normalize", "history", "settings", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestExecute_BootstrapsWithConfigDir(t *testing.T) {
	old := app
	app = nil
	t.Cleanup(func() {
		app = old
		bootstrap = nil
		resetFlags(rootCmd)
		logger.SetVerbose(false)
	})

	var gotDir string
	closed := false
	boot := func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{Close: func() error { closed = true; return nil }}, nil
	}

	rootCmd.SetArgs([]string{"version", "--config-dir", "/tmp/mocap", "--verbose"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, Execute(context.Background(), "1.2.3", boot))
	assert.Equal(t, "/tmp/mocap", gotDir)
	assert.True(t, closed)
	assert.True(t, logger.IsVerbose())
	assert.Equal(t, "1.2.3", version)
	version = "dev"
}

func TestExecute_BootstrapError(t *testing.T) {
	old := app
	app = nil
	t.Cleanup(func() {
		app = old
		bootstrap = nil
		resetFlags(rootCmd)
	})

	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	err := Execute(context.Background(), "", func(string) (*Services, error) {
		return nil, errors.New("no home directory")
	})
	assert.ErrorContains(t, err, "no home directory")
}
