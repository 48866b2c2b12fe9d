package runtime

import (
	"slices"

	"github.com/aretw0/fsacheck/pkg/automaton"
	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/report"
)

// analyse runs once every declaration has been ingested without error.
func (r *run) analyse() *report.Report {
	visited := Reachable(r.reg)
	if slices.Contains(visited, false) {
		r.warn(domain.WarnUnreachable)
	}

	warnings := slices.Clone(r.warnings)
	slices.Sort(warnings)

	return &report.Report{
		Complete: IsComplete(r.reg),
		Warnings: warnings,
	}
}

// Reachable runs a breadth-first traversal of the transition table from the
// initial state and returns the visited flag of every state index.
// Edges are followed from source to destination only.
func Reachable(reg *automaton.Registry) []bool {
	visited := make([]bool, reg.Size())
	initial, ok := reg.Initial()
	if !ok {
		return visited
	}
	start, err := reg.Index(initial)
	if err != nil {
		return visited
	}

	table := reg.Table()
	queue := []int{start}
	visited[start] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current >= len(table) {
			continue
		}
		for next, symbol := range table[current] {
			if symbol == "" || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

// IsComplete reports whether the automaton defines exactly one transition
// per (state, symbol) pair, by count.
func IsComplete(reg *automaton.Registry) bool {
	return reg.TransitionCount() == reg.CompleteTransitionCount()
}
