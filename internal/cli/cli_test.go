package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fsacheck/internal/config"
	"github.com/aretw0/fsacheck/internal/testutils"
	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/report"
)

const (
	completeFSA  = "states=[on,off]\nalpha=[turn_on,turn_off]\ninit.st=[off]\nfin.st=[]\ntrans=[off>turn_on>on,off>turn_off>off,on>turn_on>on,on>turn_off>off]\n"
	unknownFSA   = "states=[on,off]\nalpha=[turn_on,turn_off]\ninit.st=[off]\nfin.st=[]\ntrans=[off>turn_on>on,on>turn_off>of]\n"
	unreachedFSA = "states=[a,b,c]\nalpha=[0]\ninit.st=[a]\nfin.st=[b]\ntrans=[a>0>b,c>0>a]\n"
)

func writeInput(t *testing.T, content string) (input, output string) {
	t.Helper()
	input = testutils.WriteDeclarations(t, "fsa.txt", content)
	output = filepath.Join(filepath.Dir(input), "result.txt")
	return input, output
}

func tempStdout(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func readAll(t *testing.T, f *os.File) string {
	t.Helper()
	_, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

func TestValidate(t *testing.T) {
	t.Run("Complete Automaton", func(t *testing.T) {
		input, output := writeInput(t, completeFSA)
		stdout := tempStdout(t)

		err := Validate(context.Background(), ValidateOptions{Input: input, Output: output, Stdout: stdout})
		require.NoError(t, err)

		written, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "FSA is complete\nWarning:\nW1: Accepting state is not defined\n", string(written))
		assert.Equal(t, string(written), readAll(t, stdout))
	})

	t.Run("Rejected Automaton", func(t *testing.T) {
		input, output := writeInput(t, unknownFSA)
		stdout := tempStdout(t)

		err := Validate(context.Background(), ValidateOptions{Input: input, Output: output, Stdout: stdout})
		assert.ErrorIs(t, err, ErrRejected)

		written, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "Error:\nE1: A state 'of' is not in the set of states", string(written))
	})

	t.Run("JSON Output", func(t *testing.T) {
		input, output := writeInput(t, unreachedFSA)
		stdout := tempStdout(t)

		err := Validate(context.Background(), ValidateOptions{
			Input: input, Output: output, Format: config.FormatJSON, Stdout: stdout,
		})
		require.NoError(t, err)

		var doc report.Document
		require.NoError(t, json.Unmarshal([]byte(readAll(t, stdout)), &doc))
		assert.True(t, doc.OK)
		assert.Equal(t, report.VerdictIncomplete, doc.Verdict)
		assert.Equal(t, []string{domain.WarnUnreachable.String()}, doc.Warnings)
	})

	t.Run("Quiet", func(t *testing.T) {
		input, output := writeInput(t, completeFSA)
		stdout := tempStdout(t)

		require.NoError(t, Validate(context.Background(), ValidateOptions{
			Input: input, Output: output, Quiet: true, Stdout: stdout,
		}))
		assert.Empty(t, readAll(t, stdout))
		assert.FileExists(t, output)
	})

	t.Run("Missing Input", func(t *testing.T) {
		dir := t.TempDir()
		err := Validate(context.Background(), ValidateOptions{
			Input:  filepath.Join(dir, "missing.txt"),
			Output: filepath.Join(dir, "result.txt"),
			Stdout: tempStdout(t),
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRejected)
		assert.NoFileExists(t, filepath.Join(dir, "result.txt"))
	})
}

func TestGraph(t *testing.T) {
	input, _ := writeInput(t, unreachedFSA)

	var buf bytes.Buffer
	require.NoError(t, Graph(context.Background(), input, &buf, nil))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, "s_a -- \"0\" --> s_b")
	assert.Contains(t, out, "class s_c unreachable")

	bad, _ := writeInput(t, unknownFSA)
	err := Graph(context.Background(), bad, &buf, nil)
	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestServeHandler(t *testing.T) {
	srv := httptest.NewServer(NewServeHandler(ServeOptions{}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/validate", "text/plain", strings.NewReader(completeFSA))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fsacheck_runs_total{outcome="complete"} 1`)
	assert.Contains(t, string(body), `fsacheck_warnings_total{code="W1"} 1`)
}

func TestServeMCP_UnknownTransport(t *testing.T) {
	err := ServeMCP(context.Background(), MCPOptions{Transport: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unknown transport")
}

func TestCombineHooks(t *testing.T) {
	var calls []string
	hooks := combineHooks(
		domain.Hooks{OnReport: func(context.Context, *domain.ReportEvent) { calls = append(calls, "first") }},
		domain.Hooks{},
		domain.Hooks{OnReport: func(context.Context, *domain.ReportEvent) { calls = append(calls, "second") }},
	)
	hooks.OnPhase(context.Background(), &domain.PhaseEvent{})
	hooks.OnReport(context.Background(), &domain.ReportEvent{})
	assert.Equal(t, []string{"first", "second"}, calls)
}
