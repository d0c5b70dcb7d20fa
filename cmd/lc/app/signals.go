package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Peter-Juhasz/line-counter/pkg/logger"
)

// setupSignalHandling installs the interrupt handler. The first
// SIGINT or SIGTERM cancels the run context so workers stop at the
// next read boundary; a second one exits immediately.
func (a *App) setupSignalHandling() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go a.handleSignals(sigChan)
}

func (a *App) handleSignals(sigChan chan os.Signal) {
	cancelled := false

	for sig := range sigChan {
		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Debug("Signal received")

		if !cancelled {
			cancelled = true
			a.log.Warn("Interrupt received, cancelling run")
			a.cancel()
			continue
		}

		a.log.Warn("Second interrupt received, exiting")
		os.Exit(1)
	}
}
