package main

import (
	"context"
	"os"
	"os/signal"
)

// interruptContext is cancelled on the first interrupt, and exits the process on the second.
func interruptContext(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		defer cancel()
		<-sigs
		cancel()
		<-sigs
		os.Exit(1)
	}()
	return ctx
}
