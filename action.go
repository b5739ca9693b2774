package redukt

import (
	"github.com/SSSOCPaulCote/gux"
)

// Type is the unique string tag distinguishing one kind of action from another.
// Types are namespaced by convention, e.g. "auth/LOGIN_REQUEST" or "telemetry/update"
type Type string

// CreateAction returns an action creator for a payloadless action type. The
// produced action carries no payload
func CreateAction(actionType Type) func() gux.Action {
	return func() gux.Action {
		return gux.Action{Type: string(actionType)}
	}
}

// CreatePayloadAction returns an action creator for an action type carrying a payload
// of type P. The produced action carries the supplied payload value untouched
func CreatePayloadAction[P any](actionType Type) func(P) gux.Action {
	return func(payload P) gux.Action {
		return gux.Action{Type: string(actionType), Payload: payload}
	}
}
