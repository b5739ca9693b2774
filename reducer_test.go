package redukt

import (
	"testing"

	"github.com/SSSOCPaulCote/gux"
)

type counterState struct {
	Count int
}

var (
	counterInitialState = counterState{}
	incrementCounter    = CreateAction("counter/INCREMENT")
	addToCounter        = CreatePayloadAction[int]("counter/ADD")
	counterHandlers     = CreateHandlers(Handlers[counterState]{
		"counter/INCREMENT": NewHandler(func(s counterState) counterState {
			s.Count += 1
			return s
		}),
		"counter/ADD": NewPayloadHandler(func(s counterState, n int) counterState {
			s.Count += n
			return s
		}),
	})
)

// TestCreateHandlers ensures CreateHandlers returns its argument unmodified
func TestCreateHandlers(t *testing.T) {
	handlers := Handlers[counterState]{
		"counter/INCREMENT": NewHandler(func(s counterState) counterState { return s }),
	}
	returned := CreateHandlers(handlers)
	if len(returned) != len(handlers) {
		t.Errorf("Expected %v handlers, received %v", len(handlers), len(returned))
	}
	returned["counter/ADD"] = NewHandler(func(s counterState) counterState { return s })
	if _, ok := handlers["counter/ADD"]; !ok {
		t.Error("CreateHandlers did not return the same underlying table")
	}
}

// TestCreateReducerDelegates ensures the built reducer delegates to the registered handler
func TestCreateReducerDelegates(t *testing.T) {
	reducer := CreateReducer(counterInitialState, counterHandlers)
	newState, err := reducer(counterState{Count: 2}, addToCounter(40))
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	counter, ok := newState.(counterState)
	if !ok {
		t.Fatalf("Reducer did not return a counterState: %v", newState)
	}
	if counter.Count != 42 {
		t.Errorf("Expected: %v, received: %v", 42, counter.Count)
	}
}

// TestCreateReducerDefaultsInitialState ensures a nil state is substituted with the initial state
func TestCreateReducerDefaultsInitialState(t *testing.T) {
	reducer := CreateReducer(counterState{Count: 5}, counterHandlers)
	fromNil, err := reducer(nil, incrementCounter())
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	fromInitial, err := reducer(counterState{Count: 5}, incrementCounter())
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	if fromNil != fromInitial {
		t.Errorf("Expected: %v, received: %v", fromInitial, fromNil)
	}
	if fromNil.(counterState).Count != 6 {
		t.Errorf("Expected: %v, received: %v", 6, fromNil.(counterState).Count)
	}
}

// TestCreateReducerPassThrough ensures actions without a registered handler return the
// current state unchanged and without error
func TestCreateReducerPassThrough(t *testing.T) {
	reducer := CreateReducer(counterInitialState, counterHandlers)
	current := counterState{Count: 9}
	newState, err := reducer(current, gux.Action{Type: "unknown/action"})
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	if newState != current {
		t.Errorf("Expected: %v, received: %v", current, newState)
	}
}

// TestCreateReducerPassThroughReference ensures pass through preserves the exact state
// reference when the state is a pointer
func TestCreateReducerPassThroughReference(t *testing.T) {
	initial := &counterState{}
	reducer := CreateReducer(initial, Handlers[*counterState]{})
	current := &counterState{Count: 3}
	newState, err := reducer(current, gux.Action{Type: "unknown/action"})
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	if newState != current {
		t.Error("Pass through did not preserve the state reference")
	}
}

// TestCreateReducerInvalidState ensures a state of the wrong type is rejected
func TestCreateReducerInvalidState(t *testing.T) {
	reducer := CreateReducer(counterInitialState, counterHandlers)
	_, err := reducer("not a counter", incrementCounter())
	if err != gux.ErrInvalidStateType {
		t.Errorf("Expected: %v, received: %v", gux.ErrInvalidStateType, err)
	}
}

// TestCreateReducerInvalidPayload ensures a payload of the wrong type crossing an untyped
// boundary is rejected by the payload handler
func TestCreateReducerInvalidPayload(t *testing.T) {
	reducer := CreateReducer(counterInitialState, counterHandlers)
	_, err := reducer(counterInitialState, gux.Action{Type: "counter/ADD", Payload: "nope"})
	if err != gux.ErrInvalidPayloadType {
		t.Errorf("Expected: %v, received: %v", gux.ErrInvalidPayloadType, err)
	}
}

// TestCreateReducerNoOpIdempotence ensures that a table of handlers returning their input
// unchanged never changes the state over any sequence of actions
func TestCreateReducerNoOpIdempotence(t *testing.T) {
	reducer := CreateReducer(counterInitialState, CreateHandlers(Handlers[counterState]{
		"counter/INCREMENT": NewHandler(func(s counterState) counterState { return s }),
		"counter/ADD":       NewPayloadHandler(func(s counterState, _ int) counterState { return s }),
	}))
	actions := []gux.Action{
		incrementCounter(),
		addToCounter(100),
		{Type: "unknown/action"},
		incrementCounter(),
	}
	state := interface{}(counterState{Count: 7})
	for _, action := range actions {
		newState, err := reducer(state, action)
		if err != nil {
			t.Fatalf("Error reducing state: %v", err)
		}
		if newState != state {
			t.Errorf("Expected: %v, received: %v", state, newState)
		}
		state = newState
	}
}

// TestCombineReducers ensures named slices are reduced independently and missing
// sub-states default to each slice's initial state
func TestCombineReducers(t *testing.T) {
	type flagState struct {
		Enabled bool
	}
	flagHandlers := CreateHandlers(Handlers[flagState]{
		"flag/ENABLE": NewHandler(func(s flagState) flagState {
			s.Enabled = true
			return s
		}),
	})
	combined := CombineReducers(map[string]gux.Reducer{
		"counter": CreateReducer(counterInitialState, counterHandlers),
		"flag":    CreateReducer(flagState{}, flagHandlers),
	})
	// from an absent aggregate state, only the counter slice should move
	newState, err := combined(nil, addToCounter(3))
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	aggregate, ok := newState.(map[string]interface{})
	if !ok {
		t.Fatalf("Aggregate state is not a map: %v", newState)
	}
	if aggregate["counter"].(counterState).Count != 3 {
		t.Errorf("Expected: %v, received: %v", 3, aggregate["counter"].(counterState).Count)
	}
	if aggregate["flag"].(flagState).Enabled {
		t.Error("Flag slice changed on a counter action")
	}
	// a foreign action must leave every slice unchanged
	newState, err = combined(newState, gux.Action{Type: "unknown/action"})
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	aggregate = newState.(map[string]interface{})
	if aggregate["counter"].(counterState).Count != 3 || aggregate["flag"].(flagState).Enabled {
		t.Errorf("Foreign action changed the aggregate state: %v", aggregate)
	}
	// slice actions must not leak across slices
	newState, err = combined(newState, gux.Action{Type: "flag/ENABLE"})
	if err != nil {
		t.Fatalf("Error reducing state: %v", err)
	}
	aggregate = newState.(map[string]interface{})
	if !aggregate["flag"].(flagState).Enabled {
		t.Error("Flag slice did not handle its own action")
	}
	if aggregate["counter"].(counterState).Count != 3 {
		t.Errorf("Expected: %v, received: %v", 3, aggregate["counter"].(counterState).Count)
	}
}

// TestCombineReducersInvalidState ensures an aggregate state of the wrong type is rejected
func TestCombineReducersInvalidState(t *testing.T) {
	combined := CombineReducers(map[string]gux.Reducer{
		"counter": CreateReducer(counterInitialState, counterHandlers),
	})
	_, err := combined(counterInitialState, incrementCounter())
	if err != gux.ErrInvalidStateType {
		t.Errorf("Expected: %v, received: %v", gux.ErrInvalidStateType, err)
	}
}
