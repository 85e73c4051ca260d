package model

import "strings"

// ActionType discriminates the routing action variants on the wire.
type ActionType string

const (
	ActionDrop    ActionType = "drop"
	ActionForward ActionType = "forward"
	ActionWorker  ActionType = "worker"
)

// Action is a single routing action of a rule. Value carries the
// destination addresses for forward actions and the script names for
// worker actions; it is empty for drop.
type Action struct {
	Type  ActionType `json:"type"`
	Value []string   `json:"value,omitempty"`
}

// ParseAction turns a free-text CLI token into an action. "drop" maps to
// the drop action; any other text becomes a single-destination forward.
// Worker actions and multi-destination forwards cannot be expressed in
// free text and only arise from provider responses.
func ParseAction(s string) Action {
	if s == "drop" {
		return Action{Type: ActionDrop}
	}
	return Action{Type: ActionForward, Value: []string{s}}
}

// String renders the action for console output.
func (a Action) String() string {
	switch a.Type {
	case ActionDrop:
		return "Drop"
	case ActionForward:
		return "Forward to " + strings.Join(a.Value, ", ")
	case ActionWorker:
		return "Worker (" + strings.Join(a.Value, ", ") + ")"
	default:
		return string(a.Type)
	}
}
