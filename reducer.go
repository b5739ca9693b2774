package redukt

import (
	"github.com/SSSOCPaulCote/gux"
)

// CreateReducer composes an initial state and a complete handler table into a single
// reducer ready to be registered with gux.CreateStore. When the incoming state is nil
// the initial state is substituted. Actions whose type has no entry in the handler
// table pass the current state through unchanged so the reducer stays composable
// inside a larger aggregate reducer
func CreateReducer[S any](initialState S, handlers Handlers[S]) gux.Reducer {
	return func(s interface{}, a gux.Action) (interface{}, error) {
		var currentState S
		if s == nil {
			currentState = initialState
		} else {
			// assert type of s
			typedState, ok := s.(S)
			if !ok {
				return nil, gux.ErrInvalidStateType
			}
			currentState = typedState
		}
		handler, ok := handlers[Type(a.Type)]
		if !ok {
			return currentState, nil
		}
		newState, err := handler(currentState, a)
		if err != nil {
			return nil, err
		}
		return newState, nil
	}
}

// CombineReducers combines named slice reducers into one aggregate reducer whose
// state is a map keyed by sub-state name. Every dispatched action is offered to
// every slice. A sub-state missing from the aggregate map is dispatched as nil,
// which triggers that slice reducer's own initial state substitution
func CombineReducers(reducers map[string]gux.Reducer) gux.Reducer {
	return func(s interface{}, a gux.Action) (interface{}, error) {
		var currentState map[string]interface{}
		if s != nil {
			typedState, ok := s.(map[string]interface{})
			if !ok {
				return nil, gux.ErrInvalidStateType
			}
			currentState = typedState
		}
		newState := make(map[string]interface{}, len(reducers))
		for name, reducer := range reducers {
			newSubState, err := reducer(currentState[name], a)
			if err != nil {
				return nil, err
			}
			newState[name] = newSubState
		}
		return newState, nil
	}
}
