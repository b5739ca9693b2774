package auth

import (
	"github.com/SSSOC-CAN/redukt"
)

// Action types for the login flow
const (
	LoginRequest redukt.Type = "auth/LOGIN_REQUEST"
	LoginSuccess redukt.Type = "auth/LOGIN_SUCCESS"
	LoginFailure redukt.Type = "auth/LOGIN_FAILURE"
)

// Status values for the Status field of the auth state
const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Credentials is the payload carried by a LoginSuccess action
type Credentials struct {
	UserID string
	Token  string
}

// State is the authentication state slice
type State struct {
	IsAuthenticated bool
	Status          string
	UserID          string
	Token           string
	Err             error
}

var (
	InitialState = State{Status: StatusIdle}

	// Action creators
	RequestLogin  = redukt.CreateAction(LoginRequest)
	CompleteLogin = redukt.CreatePayloadAction[Credentials](LoginSuccess)
	FailLogin     = redukt.CreatePayloadAction[error](LoginFailure)

	// Reducer for the auth state slice
	Reducer = redukt.CreateReducer(InitialState, redukt.CreateHandlers(redukt.Handlers[State]{
		LoginRequest: redukt.NewHandler(func(s State) State {
			s.Status = StatusLoading
			return s
		}),
		LoginSuccess: redukt.NewPayloadHandler(func(s State, creds Credentials) State {
			s.IsAuthenticated = true
			s.Status = StatusSuccess
			s.UserID = creds.UserID
			s.Token = creds.Token
			s.Err = nil
			return s
		}),
		LoginFailure: redukt.NewPayloadHandler(func(s State, err error) State {
			s.IsAuthenticated = false
			s.Status = StatusFailure
			s.Err = err
			return s
		}),
	}))
)
