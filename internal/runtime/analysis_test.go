package runtime_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/aretw0/fsacheck/internal/runtime"
	"github.com/aretw0/fsacheck/pkg/automaton"
	"github.com/aretw0/fsacheck/pkg/domain"
)

func TestReachable(t *testing.T) {
	reg := automaton.New()
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, reg.AddState(s))
	}
	require.NoError(t, reg.AddSymbol("0"))
	reg.Seal()
	require.NoError(t, reg.SetInitial("b"))

	for _, tok := range []string{"a>0>b", "b>0>c"} {
		tr, err := domain.ParseTransition(tok)
		require.NoError(t, err)
		_, err = reg.AddTransition(tr)
		require.NoError(t, err)
	}

	// Direction matters: a points at b but is not reachable from it.
	assert.Equal(t, []bool{false, true, true, false}, runtime.Reachable(reg))
	assert.False(t, runtime.IsComplete(reg))
}

// An edge only propagates reachability from an already visited state.
func TestReachableProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		reg := automaton.New()
		states := make([]string, n)
		for i := range states {
			states[i] = fmt.Sprintf("s%d", i)
			_ = reg.AddState(states[i])
		}
		_ = reg.AddSymbol("x")
		_ = reg.AddSymbol("y")
		reg.Seal()
		initial := rapid.SampledFrom(states).Draw(rt, "initial")
		_ = reg.SetInitial(initial)

		edges := rapid.IntRange(0, n*2).Draw(rt, "edges")
		for i := 0; i < edges; i++ {
			_, _ = reg.AddTransition(domain.Transition{
				From:   rapid.SampledFrom(states).Draw(rt, "from"),
				Symbol: rapid.SampledFrom([]string{"x", "y"}).Draw(rt, "symbol"),
				To:     rapid.SampledFrom(states).Draw(rt, "to"),
			})
		}

		visited := runtime.Reachable(reg)
		start, _ := reg.Index(initial)
		if !visited[start] {
			rt.Fatalf("initial state not visited")
		}
		table := reg.Table()
		for to := range visited {
			if !visited[to] || to == start {
				continue
			}
			hasVisitedParent := false
			for from := range table {
				if visited[from] && table[from][to] != "" {
					hasVisitedParent = true
				}
			}
			if !hasVisitedParent {
				rt.Fatalf("state %d visited without an edge from a visited state", to)
			}
		}

		if runtime.IsComplete(reg) != (reg.TransitionCount() == len(states)*2) {
			rt.Fatalf("completeness disagrees with count arithmetic")
		}
	})
}
