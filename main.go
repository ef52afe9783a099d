/*
Command line front end of the transform bridge. It drives the exporter and
the populator headless, with the testbed standing in for Maya and UE4.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/anima-bridge/engine/core"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		cancel()
	}()

	if err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		core.LogError(err.Error())
		os.Exit(1)
	}
}
