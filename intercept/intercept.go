// Package intercept defines objects and related functions to monitor requests to shutdown the application
package intercept

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rs/zerolog"
)

var (
	started int32
)

// Interceptor is the object controlling application shutdown requests
type Interceptor struct {
	Logger                 *zerolog.Logger
	interruptChannel       chan os.Signal
	shutdownChannel        chan struct{}
	shutdownRequestChannel chan struct{}
	quit                   chan struct{}
}

// logf writes through the attached zerolog logger when one is set
func (interceptor *Interceptor) logf(msg string) {
	if interceptor.Logger != nil {
		interceptor.Logger.Info().Msg(msg)
		return
	}
	log.Println(msg)
}

// mainInterruptHandler listens for SIGINT (Ctrl+C) signals on the interruptChannel and shutdown requests on the
// shutdownRequestChannel.
func (interceptor *Interceptor) mainInterruptHandler() {
	defer atomic.StoreInt32(&started, 0)
	var isShutdown bool
	shutdown := func() {
		if isShutdown {
			interceptor.logf("Already shutting down...")
			return
		}
		isShutdown = true
		interceptor.logf("Shutting down...")
		close(interceptor.quit)
	}
	for {
		select {
		case sig := <-interceptor.interruptChannel:
			interceptor.logf("Received " + sig.String())
			shutdown()
		case <-interceptor.shutdownRequestChannel:
			interceptor.logf("Received shutdown request.")
			shutdown()
		case <-interceptor.quit:
			interceptor.logf("Gracefully shutting down.")
			close(interceptor.shutdownChannel)
			signal.Stop(interceptor.interruptChannel)
			return
		}
	}
}

// RequestShutdown initiates a graceful shutdown from the application.
func (interceptor *Interceptor) RequestShutdown() {
	select {
	case interceptor.shutdownRequestChannel <- struct{}{}:
	case <-interceptor.quit:
	}
}

// ShutdownChannel returns the channel that will be closed once the main
// interrupt handler has exited.
func (interceptor *Interceptor) ShutdownChannel() <-chan struct{} {
	return interceptor.shutdownChannel
}

// InitInterceptor initializes the shutdown and interrupt interceptor
func InitInterceptor() (*Interceptor, error) {
	if !atomic.CompareAndSwapInt32(&started, 0, 1) {
		return nil, errors.New("interceptor already initialized")
	}
	interceptor := &Interceptor{
		interruptChannel:       make(chan os.Signal, 1),
		shutdownChannel:        make(chan struct{}),
		shutdownRequestChannel: make(chan struct{}),
		quit:                   make(chan struct{}),
	}
	signal.Notify(interceptor.interruptChannel, os.Interrupt, syscall.SIGTERM)
	go interceptor.mainInterruptHandler()
	return interceptor, nil
}
