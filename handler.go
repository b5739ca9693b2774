package redukt

import (
	"github.com/SSSOCPaulCote/gux"
)

type (
	// Handler computes the next state of a slice from the current state and a dispatched action.
	// Handlers must not mutate the state they are given
	Handler[S any] func(S, gux.Action) (S, error)

	// Handlers maps every action type belonging to a state slice to its handler
	Handlers[S any] map[Type]Handler[S]
)

// NewHandler wraps a state-only function as a Handler. Used for payloadless action
// types, the dispatched action itself is ignored
func NewHandler[S any](fn func(S) S) Handler[S] {
	return func(s S, _ gux.Action) (S, error) {
		return fn(s), nil
	}
}

// NewPayloadHandler wraps a payload-typed function as a Handler.
// The payload type is only checked at runtime when an action crosses an untyped
// boundary, actions built with CreatePayloadAction always carry the right type
func NewPayloadHandler[S, P any](fn func(S, P) S) Handler[S] {
	return func(s S, a gux.Action) (S, error) {
		// assert type of payload
		payload, ok := a.Payload.(P)
		if !ok {
			var noState S
			return noState, gux.ErrInvalidPayloadType
		}
		return fn(s, payload), nil
	}
}

// CreateHandlers returns its argument unchanged. It exists so that a handler table
// literal is type checked against Handlers[S] without the caller having to spell
// the table type out at the declaration site
func CreateHandlers[S any](handlers Handlers[S]) Handlers[S] {
	return handlers
}
