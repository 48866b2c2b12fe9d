package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPhase  EventType = "phase"
	EventReport EventType = "report"
)

// Phase names the ingestion and analysis steps of a run, in order.
type Phase string

const (
	PhaseStates      Phase = "states"
	PhaseAlphabet    Phase = "alphabet"
	PhaseInitial     Phase = "initial"
	PhaseFinals      Phase = "finals"
	PhaseTransitions Phase = "transitions"
	PhaseAnalysis    Phase = "analysis"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// PhaseEvent is emitted when a phase finishes, successfully or not.
type PhaseEvent struct {
	EventBase
	Phase    Phase `json:"phase"`
	Consumed int   `json:"consumed"` // Declarations ingested during the phase
	Err      error `json:"-"`
}

// ReportEvent is emitted once per run, after the outcome is decided.
type ReportEvent struct {
	EventBase
	Outcome  string        `json:"outcome"` // "complete", "incomplete" or the error kind
	Warnings []Warning     `json:"warnings,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Hooks defines callbacks for engine observability.
type Hooks struct {
	OnPhase  func(context.Context, *PhaseEvent)
	OnReport func(context.Context, *ReportEvent)
}
