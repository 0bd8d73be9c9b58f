package training

import (
	"fmt"
	"sync"
)

type EventKind string

const (
	EventDecision     EventKind = "decision_taken"
	EventRuleMatched  EventKind = "rule_matched"
	EventFallbackUsed EventKind = "fallback_used"
)

// DecisionEvent is one auditable step taken by the engine.
type DecisionEvent struct {
	Stage   string    `json:"stage"`
	Kind    EventKind `json:"kind"`
	Pattern Pattern   `json:"pattern,omitempty"`
	Subject string    `json:"subject,omitempty"`
	Detail  string    `json:"detail"`
}

func (e DecisionEvent) String() string {
	return fmt.Sprintf("[%s/%s] %s %s: %s", e.Stage, e.Kind, e.Pattern, e.Subject, e.Detail)
}

type Recorder interface {
	Record(event DecisionEvent)
}

// EventLog collects events in order. The zero value is ready to use.
type EventLog struct {
	mu     sync.Mutex
	events []DecisionEvent
}

func (l *EventLog) Record(event DecisionEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *EventLog) Events() []DecisionEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]DecisionEvent(nil), l.events...)
}

// Filter returns the events emitted by the given stage.
func (l *EventLog) Filter(stage string) []DecisionEvent {
	var out []DecisionEvent
	for _, e := range l.Events() {
		if e.Stage == stage {
			out = append(out, e)
		}
	}
	return out
}

type discard struct{}

func (discard) Record(DecisionEvent) {}

// Discard drops every event.
var Discard Recorder = discard{}

// OrDiscard guards against a nil recorder.
func OrDiscard(r Recorder) Recorder {
	if r == nil {
		return Discard
	}
	return r
}
