package domain

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every fatal error of a run wraps exactly one of them.
var (
	ErrUnknownState        = errors.New("unknown state")
	ErrUnknownSymbol       = errors.New("unknown symbol")
	ErrDuplicateState      = errors.New("duplicate state")
	ErrDuplicateSymbol     = errors.New("duplicate symbol")
	ErrInitialAlreadySet   = errors.New("initial state already set")
	ErrDuplicateTransition = errors.New("duplicate transition")
	ErrDisjointStates      = errors.New("disjoint states")
	ErrMalformedInput      = errors.New("malformed input")
	ErrEmptyRequiredGroup  = errors.New("empty required group")
)

// Error codes printed in reports. Kinds without a code print a bare message.
const (
	CodeUnknownState   = "E1"
	CodeDisjointStates = "E2"
	CodeUnknownSymbol  = "E3"
	CodeNoInitialState = "E4"
	CodeMalformedInput = "E5"
)

// ValidationError is a fatal failure of a validation run.
// Error() returns the exact text written to the report.
type ValidationError struct {
	Kind    error  // One of the Err* sentinels
	Code    string // E1..E5, empty for uncoded kinds
	Subject string // Offending state, symbol or group, if any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("Error:\n%s: %s", e.Code, e.Message)
}

// Unwrap exposes the Kind sentinel to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// AsValidationError extracts the ValidationError carried by err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// UnknownState reports a reference to a state that was never declared.
func UnknownState(state string) error {
	return &ValidationError{
		Kind:    ErrUnknownState,
		Code:    CodeUnknownState,
		Subject: state,
		Message: fmt.Sprintf("A state '%s' is not in the set of states", state),
	}
}

// UnknownSymbol reports a transition labelled with a symbol outside the alphabet.
func UnknownSymbol(symbol string) error {
	return &ValidationError{
		Kind:    ErrUnknownSymbol,
		Code:    CodeUnknownSymbol,
		Subject: symbol,
		Message: fmt.Sprintf("A transition '%s' is not represented in the alphabet", symbol),
	}
}

func DuplicateState(state string) error {
	return &ValidationError{
		Kind:    ErrDuplicateState,
		Subject: state,
		Message: fmt.Sprintf("State %s already exists", state),
	}
}

func DuplicateSymbol(symbol string) error {
	return &ValidationError{
		Kind:    ErrDuplicateSymbol,
		Subject: symbol,
		Message: fmt.Sprintf("Alpha %s already exists", symbol),
	}
}

func InitialAlreadySet(state string) error {
	return &ValidationError{
		Kind:    ErrInitialAlreadySet,
		Subject: state,
		Message: "Initial state is already defined",
	}
}

func DuplicateTransition(t Transition) error {
	return &ValidationError{
		Kind:    ErrDuplicateTransition,
		Subject: t.String(),
		Message: "Such transition already exists",
	}
}

// DisjointStates reports a transition whose endpoints are both unconnected
// to every transition ingested before it.
func DisjointStates(t Transition) error {
	return &ValidationError{
		Kind:    ErrDisjointStates,
		Code:    CodeDisjointStates,
		Subject: t.String(),
		Message: "Some states are disjoint",
	}
}

// MalformedInput reports a structural failure of a declaration group.
func MalformedInput() error {
	return &ValidationError{
		Kind:    ErrMalformedInput,
		Code:    CodeMalformedInput,
		Message: "Input file is malformed",
	}
}

// EmptyRequiredGroup reports a required group (states, alpha or init.st)
// declared without any token.
func EmptyRequiredGroup(group string) error {
	vErr := &ValidationError{Kind: ErrEmptyRequiredGroup, Subject: group}
	switch group {
	case GroupStates:
		vErr.Message = "States array is empty"
	case GroupAlphabet:
		vErr.Message = "Alphabet array is empty"
	default:
		vErr.Code = CodeNoInitialState
		vErr.Message = "Initial state is not defined"
	}
	return vErr
}
