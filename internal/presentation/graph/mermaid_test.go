package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/fsacheck/internal/presentation/graph"
	"github.com/aretw0/fsacheck/pkg/automaton"
	"github.com/aretw0/fsacheck/pkg/domain"
)

func build(t *testing.T, states []string, initial string, finals []string, trans ...string) *automaton.Registry {
	t.Helper()
	reg := automaton.New()
	for _, s := range states {
		if err := reg.AddState(s); err != nil {
			t.Fatal(err)
		}
	}
	for _, a := range []string{"0", "1"} {
		if err := reg.AddSymbol(a); err != nil {
			t.Fatal(err)
		}
	}
	reg.Seal()
	if err := reg.SetInitial(initial); err != nil {
		t.Fatal(err)
	}
	for _, f := range finals {
		if err := reg.AddFinal(f); err != nil {
			t.Fatal(err)
		}
	}
	for _, tok := range trans {
		tr, err := domain.ParseTransition(tok)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := reg.AddTransition(tr); err != nil {
			t.Fatal(err)
		}
	}
	return reg
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		reg      func(t *testing.T) *automaton.Registry
		overlay  *graph.GraphOverlay
		contains []string
	}{
		{
			name: "State Shapes",
			reg: func(t *testing.T) *automaton.Registry {
				return build(t, []string{"q0", "q1", "q2"}, "q0", []string{"q2"})
			},
			contains: []string{
				`s_q0(("q0"))`,
				`s_q1("q1")`,
				`s_q2((("q2")))`,
				"start_marker[ ] --> s_q0",
			},
		},
		{
			name: "Labelled Edges",
			reg: func(t *testing.T) *automaton.Registry {
				return build(t, []string{"a", "b"}, "a", nil, "a>0>b", "b>1>a")
			},
			contains: []string{
				`s_a -- "0" --> s_b`,
				`s_b -- "1" --> s_a`,
			},
		},
		{
			name: "ID Sanitization",
			reg: func(t *testing.T) *automaton.Registry {
				return build(t, []string{"end", "my-state"}, "end", nil)
			},
			contains: []string{
				`s_end(("end"))`,
				`s_my_2d_state("my-state")`,
			},
		},
		{
			name: "Unreachable Overlay",
			reg: func(t *testing.T) *automaton.Registry {
				return build(t, []string{"a", "b"}, "a", nil)
			},
			overlay: &graph.GraphOverlay{Unreachable: []string{"b", "b"}},
			contains: []string{
				"classDef unreachable",
				"class s_b unreachable;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.reg(t), tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			if strings.Count(got, "class s_b unreachable;") > 1 {
				t.Errorf("overlay classes must be deduplicated:\n%v", got)
			}
		})
	}
}
