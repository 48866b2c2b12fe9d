package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fsacheck/pkg/adapters/file"
	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/ports/tests"
)

func TestSink_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), file.DefaultOutput)
	tests.SinkContractTest(t, file.NewSink(path), func() (string, error) {
		data, err := os.ReadFile(path)
		return string(data), err
	})
}

func TestSource_Contract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, file.DefaultInput)
	require.NoError(t, os.WriteFile(path,
		[]byte("states=[a,b]\nalpha=[0]\ninit.st=[a]\nfin.st=[b]\ntrans=[a>0>b]\n"), 0o644))

	tests.SourceContractTest(t, file.NewSource(path), domain.Declarations{
		States:      []string{"a", "b"},
		Alphabet:    []string{"0"},
		Initial:     []string{"a"},
		Finals:      []string{"b"},
		Transitions: []string{"a>0>b"},
	})

	yamlPath := filepath.Join(dir, "fsa.yaml")
	require.NoError(t, os.WriteFile(yamlPath,
		[]byte("states: [a]\nalpha: [x]\ninit.st: [a]\nfin.st: []\ntrans: [a>x>a]\n"), 0o644))

	tests.SourceContractTest(t, file.NewSource(yamlPath), domain.Declarations{
		States:      []string{"a"},
		Alphabet:    []string{"x"},
		Initial:     []string{"a"},
		Transitions: []string{"a>x>a"},
	})
}

func TestSource_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := file.NewSource(filepath.Join(dir, "missing.txt")).Declarations(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMalformedInput)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("states=a\n"), 0o644))
	_, err = file.NewSource(bad).Declarations(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestSource_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, file.DefaultInput)
	require.NoError(t, os.WriteFile(path, []byte("states=[a]\n"), 0o644))

	src := file.NewSource(path)
	src.Debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := src.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("states=[a,b]\n"), 0o644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
