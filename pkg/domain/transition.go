package domain

import "strings"

// TransitionSeparator splits a transition token into its three parts.
const TransitionSeparator = ">"

// Transition is a directed, labelled edge between two states.
type Transition struct {
	From   string `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
}

// ParseTransition decodes a "from>symbol>to" token.
// Any token that does not split into exactly three parts is malformed.
func ParseTransition(token string) (Transition, error) {
	parts := strings.Split(token, TransitionSeparator)
	if len(parts) != 3 {
		return Transition{}, MalformedInput()
	}
	return Transition{From: parts[0], Symbol: parts[1], To: parts[2]}, nil
}

// String renders the transition back in token form.
func (t Transition) String() string {
	return t.From + TransitionSeparator + t.Symbol + TransitionSeparator + t.To
}
