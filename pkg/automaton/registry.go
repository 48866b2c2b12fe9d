package automaton

import (
	"slices"

	"github.com/aretw0/fsacheck/pkg/domain"
)

// Edge describes a transition accepted by AddTransition.
type Edge struct {
	From int // Index of the source state
	To   int // Index of the destination state

	// Nondeterministic is set when the source state already reaches another
	// destination through the same symbol.
	Nondeterministic bool

	// Detached is set when neither endpoint was linked by an earlier
	// transition. The very first transition is never detached.
	Detached bool
}

// Registry is the canonical store of one automaton.
// It is not safe for concurrent use.
type Registry struct {
	states   []string
	index    map[string]int
	alphabet []string
	symbols  map[string]struct{}

	initial    string
	hasInitial bool
	finals     []string

	sealed      bool
	table       [][]string // table[from][to] holds the symbol of that edge, "" when absent
	linked      []bool
	transitions int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		index:   make(map[string]int),
		symbols: make(map[string]struct{}),
	}
}

// AddState registers a state at the next free index.
// Empty identifiers and registrations after Seal are malformed input.
func (r *Registry) AddState(id string) error {
	if r.sealed || id == "" {
		return domain.MalformedInput()
	}
	if _, ok := r.index[id]; ok {
		return domain.DuplicateState(id)
	}
	r.index[id] = len(r.states)
	r.states = append(r.states, id)
	return nil
}

// AddSymbol registers an alphabet symbol.
func (r *Registry) AddSymbol(id string) error {
	if r.sealed || id == "" {
		return domain.MalformedInput()
	}
	if _, ok := r.symbols[id]; ok {
		return domain.DuplicateSymbol(id)
	}
	r.symbols[id] = struct{}{}
	r.alphabet = append(r.alphabet, id)
	return nil
}

// SetInitial records the initial state. It can be called once per registry.
func (r *Registry) SetInitial(id string) error {
	if _, ok := r.index[id]; !ok {
		return domain.UnknownState(id)
	}
	if r.hasInitial {
		return domain.InitialAlreadySet(id)
	}
	r.initial = id
	r.hasInitial = true
	return nil
}

// AddFinal marks a state as accepting. Repeated calls for the same state
// are kept as-is.
func (r *Registry) AddFinal(id string) error {
	if _, ok := r.index[id]; !ok {
		return domain.UnknownState(id)
	}
	r.finals = append(r.finals, id)
	return nil
}

// Seal freezes the set of states and symbols and allocates the transition
// table. Sealing twice is a no-op.
func (r *Registry) Seal() {
	if r.sealed {
		return
	}
	n := len(r.states)
	r.table = make([][]string, n)
	for i := range r.table {
		r.table[i] = make([]string, n)
	}
	r.linked = make([]bool, n)
	r.sealed = true
}

// Sealed reports whether the transition table has been allocated.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// AddTransition records the edge t and returns what is known about it.
//
// Endpoints are checked before the symbol. A cell that already holds the
// same symbol is a duplicate. A cell holding a different symbol is
// overwritten: the table keeps a single symbol per ordered pair of states.
func (r *Registry) AddTransition(t domain.Transition) (Edge, error) {
	if !r.sealed {
		return Edge{}, domain.MalformedInput()
	}
	from, ok := r.index[t.From]
	if !ok {
		return Edge{}, domain.UnknownState(t.From)
	}
	to, ok := r.index[t.To]
	if !ok {
		return Edge{}, domain.UnknownState(t.To)
	}
	if _, ok := r.symbols[t.Symbol]; !ok {
		return Edge{}, domain.UnknownSymbol(t.Symbol)
	}

	row := r.table[from]
	if row[to] == t.Symbol {
		return Edge{}, domain.DuplicateTransition(t)
	}

	edge := Edge{From: from, To: to}
	for dest, symbol := range row {
		if dest != to && symbol == t.Symbol {
			edge.Nondeterministic = true
			break
		}
	}

	if r.transitions > 0 && !r.linked[from] && !r.linked[to] {
		edge.Detached = true
	} else {
		r.linked[from] = true
		r.linked[to] = true
	}

	row[to] = t.Symbol
	r.transitions++
	return edge, nil
}

// Index returns the dense index assigned to a state.
func (r *Registry) Index(id string) (int, error) {
	i, ok := r.index[id]
	if !ok {
		return 0, domain.UnknownState(id)
	}
	return i, nil
}

// Size returns the number of registered states.
func (r *Registry) Size() int {
	return len(r.states)
}

// TransitionCount returns the number of transitions accepted so far.
func (r *Registry) TransitionCount() int {
	return r.transitions
}

// CompleteTransitionCount is the number of transitions a complete automaton
// defines: one per (state, symbol) pair.
func (r *Registry) CompleteTransitionCount() int {
	return len(r.states) * len(r.alphabet)
}

// Initial returns the initial state and whether it has been set.
func (r *Registry) Initial() (string, bool) {
	return r.initial, r.hasInitial
}

// Table returns the transition table. It is nil until Seal is called.
// Callers must not modify it.
func (r *Registry) Table() [][]string {
	return r.table
}

// Successors returns the indexes reachable from state i in one step,
// in ascending order.
func (r *Registry) Successors(i int) []int {
	if i < 0 || i >= len(r.table) {
		return nil
	}
	var out []int
	for j, symbol := range r.table[i] {
		if symbol != "" {
			out = append(out, j)
		}
	}
	return out
}

// States returns the states in registration order.
func (r *Registry) States() []string {
	return slices.Clone(r.states)
}

// Alphabet returns the symbols in registration order.
func (r *Registry) Alphabet() []string {
	return slices.Clone(r.alphabet)
}

// Finals returns the accepting states as declared, duplicates included.
func (r *Registry) Finals() []string {
	return slices.Clone(r.finals)
}

// IsFinal reports whether id was declared accepting.
func (r *Registry) IsFinal(id string) bool {
	return slices.Contains(r.finals, id)
}
