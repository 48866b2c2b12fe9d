package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fsacheck"
	"github.com/aretw0/fsacheck/internal/testutils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { cfgFile = "" })
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fsacheck version "+fsacheck.Version+"\n", out)
}

func TestGraphCommand(t *testing.T) {
	input := testutils.WriteDeclarations(t, "door.txt",
		"states=[open,closed]\nalpha=[push]\ninit.st=[closed]\nfin.st=[open]\ntrans=[closed>push>open]\n")

	out, err := execute(t, "graph", input)
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, `s_closed -- "push" --> s_open`)
}

func TestInvalidConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "graph")
	assert.ErrorContains(t, err, "reading config")
}
