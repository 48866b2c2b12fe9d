package domain

// Group labels, in the order a declaration source must provide them.
const (
	GroupStates      = "states"
	GroupAlphabet    = "alpha"
	GroupInitial     = "init.st"
	GroupFinals      = "fin.st"
	GroupTransitions = "trans"
)

// Groups returns the group labels in ingestion order.
func Groups() []string {
	return []string{GroupStates, GroupAlphabet, GroupInitial, GroupFinals, GroupTransitions}
}

// Declarations is the typed intermediate model of one automaton description.
// Each group keeps its tokens in source order; transitions stay as raw
// "from>symbol>to" tokens until the engine ingests them.
type Declarations struct {
	States      []string `json:"states" yaml:"states" mapstructure:"states"`
	Alphabet    []string `json:"alpha" yaml:"alpha" mapstructure:"alpha"`
	Initial     []string `json:"init.st" yaml:"init.st" mapstructure:"init.st"`
	Finals      []string `json:"fin.st" yaml:"fin.st" mapstructure:"fin.st"`
	Transitions []string `json:"trans" yaml:"trans" mapstructure:"trans"`
}

// Group returns the tokens declared under label.
// The second return value is false for an unknown label.
func (d *Declarations) Group(label string) ([]string, bool) {
	switch label {
	case GroupStates:
		return d.States, true
	case GroupAlphabet:
		return d.Alphabet, true
	case GroupInitial:
		return d.Initial, true
	case GroupFinals:
		return d.Finals, true
	case GroupTransitions:
		return d.Transitions, true
	}
	return nil, false
}

// SetGroup replaces the tokens of label. It returns false for an unknown label.
func (d *Declarations) SetGroup(label string, tokens []string) bool {
	switch label {
	case GroupStates:
		d.States = tokens
	case GroupAlphabet:
		d.Alphabet = tokens
	case GroupInitial:
		d.Initial = tokens
	case GroupFinals:
		d.Finals = tokens
	case GroupTransitions:
		d.Transitions = tokens
	default:
		return false
	}
	return true
}
