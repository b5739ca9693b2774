package reduktd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/SSSOC-CAN/redukt/auth"
	"github.com/SSSOC-CAN/redukt/intercept"
	"github.com/SSSOC-CAN/redukt/utils"
	bg "github.com/SSSOCPaulCote/blunderguard"
	"github.com/SSSOCPaulCote/gux"
	e "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	ErrInvalidLoginState = bg.Error("unexpected state type in auth store")
	ErrLoginRejected     = bg.Error("login rejected")
)

// Main is the true entry point for reduktd. It registers the auth reducer with a
// new gux store, subscribes a listener logging every state transition and drives
// simulated login sessions until a shutdown is requested
func Main(interceptor *intercept.Interceptor, config Config, log zerolog.Logger) error {
	rand.Seed(time.Now().UnixNano())
	store := gux.CreateStore(auth.InitialState, auth.Reducer)
	subLog := NewSubLogger(&log, "AUTH")
	subscriberName := "reduktd" + utils.RandSeq(10)
	updateChan, unsub := store.Subscribe(subscriberName)
	defer unsub(store, subscriberName)
	quit := make(chan struct{})
	defer close(quit)
	go logStateChanges(store, subLog, updateChan, quit)
	ticker := time.NewTicker(time.Duration(config.SessionInterval) * time.Second)
	defer ticker.Stop()
	log.Info().Msg("reduktd is active")
	for {
		select {
		case <-ticker.C:
			if err := runLoginSession(store); err != nil {
				return e.Wrap(err, "could not complete login session")
			}
		case <-interceptor.ShutdownChannel():
			log.Info().Msg("Shutting down reduktd...")
			return nil
		}
	}
}

// logStateChanges listens for update signals from the store and logs the new
// state after each one
func logStateChanges(store *gux.Store, subLog *subLogger, updateChan chan struct{}, quit chan struct{}) {
	for {
		select {
		case <-updateChan:
			currentState := store.GetState()
			state, ok := currentState.(auth.State)
			if !ok {
				subLog.SubLogger.Error().Msg(ErrInvalidLoginState.Error())
				continue
			}
			subLog.SubLogger.Info().Msg(fmt.Sprintf(
				"state changed: authenticated=%v status=%s user=%s", state.IsAuthenticated, state.Status, state.UserID,
			))
		case <-quit:
			return
		}
	}
}

// runLoginSession dispatches a full simulated login flow through the store.
// Roughly one in four sessions is rejected
func runLoginSession(store *gux.Store) error {
	if err := store.Dispatch(auth.RequestLogin()); err != nil {
		return e.Wrap(err, "could not dispatch login request")
	}
	if rand.Intn(4) == 0 {
		return store.Dispatch(auth.FailLogin(ErrLoginRejected))
	}
	return store.Dispatch(auth.CompleteLogin(auth.Credentials{
		UserID: utils.RandSeq(8),
		Token:  utils.RandSeq(24),
	}))
}
