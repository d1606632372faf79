package session

import "errors"

// ErrInvalidAction is returned for unknown actions.
var ErrInvalidAction = errors.New("invalid action")

// Action is one command of the main loop.
type Action string

const (
	ActionAdd    Action = "add"
	ActionPrint  Action = "print"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionEnd    Action = "end"
)

// ParseAction accepts an exact action name. Case and surrounding
// whitespace count.
func ParseAction(raw string) (Action, error) {
	switch a := Action(raw); a {
	case ActionAdd, ActionPrint, ActionEdit, ActionDelete, ActionEnd:
		return a, nil
	default:
		return "", ErrInvalidAction
	}
}
