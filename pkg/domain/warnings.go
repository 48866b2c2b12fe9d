package domain

// Warning is a non-fatal finding. Its value is the literal report line.
type Warning string

const (
	WarnNoAcceptingState Warning = "W1: Accepting state is not defined"
	WarnUnreachable      Warning = "W2: Some states are not reachable from the initial state"
	WarnNondeterministic Warning = "W3: FSA is nondeterministic"
)

// Code returns the "W<n>" prefix of the warning.
func (w Warning) Code() string {
	if len(w) < 2 {
		return string(w)
	}
	return string(w[:2])
}

func (w Warning) String() string {
	return string(w)
}
