package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventWalkStart EventType = "walk_start"
	EventStep      EventType = "step"
	EventWalkEnd   EventType = "walk_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	WalkID    string    `json:"walk_id"`
}

// WalkEvent marks the beginning or the end of a walk.
type WalkEvent struct {
	EventBase
	MaxLength int        `json:"max_length"`
	Length    int        `json:"length,omitempty"` // Only set on walk_end
	Reason    StopReason `json:"reason,omitempty"` // Only set on walk_end
}

// StepEvent reports one emitted state. Step 0 is the start state.
type StepEvent struct {
	EventBase
	Step     int  `json:"step"`
	Index    int  `json:"index"` // Position of the state in the database
	Terminal bool `json:"terminal"`
}

// LifecycleHooks defines callbacks for engine observability.
// Every field is optional.
type LifecycleHooks struct {
	OnWalkStart func(context.Context, *WalkEvent)
	OnStep      func(context.Context, *StepEvent)
	OnWalkEnd   func(context.Context, *WalkEvent)
}
