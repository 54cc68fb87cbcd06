package mainboilerplate

import (
	"os"
	"os/signal"
	"runtime/pprof"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
)

var (
	signalOnce       sync.Once
	traceEnabled     bool
	previousLogLevel log.Level
)

// RegisterSignalHandlers registers signal handlers for debugging.
//
// SIGQUIT
//   Dump a one-time goroutine trace to stderr.
//
// SIGUSR2
//   Toggle debug log level.
func RegisterSignalHandlers() {
	signalOnce.Do(func() {
		var ch = make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGQUIT, syscall.SIGUSR2)

		go func() {
			for sig := range ch {
				switch sig {
				case syscall.SIGQUIT:
					_ = pprof.Lookup("goroutine").WriteTo(os.Stderr, 1)
				case syscall.SIGUSR2:
					toggleTrace()
				}
			}
		}()
	})
}

// toggleTrace toggles debug logging.
func toggleTrace() {
	if traceEnabled {
		log.SetLevel(previousLogLevel)
	} else {
		previousLogLevel = log.GetLevel()
		log.SetLevel(log.DebugLevel)
	}
	traceEnabled = !traceEnabled
	log.WithField("level", log.GetLevel()).Info("toggled log level")
}
