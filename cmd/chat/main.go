package main

import (
	"chat-observer/chat"
	"chat-observer/domain"
	"chat-observer/exception"
	"chat-observer/internal"
	"chat-observer/observer"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and returns the first error instead of exiting,
// so deferred cleanups always run.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	policy, err := config.Policy()
	if err != nil {
		return err
	}

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Rooms and failure reporting
	directory := chat.NewDirectory[domain.Message](log, observer.WithPolicy(policy))
	exceptions := exception.NewObservers(log)
	exceptions.AddListener(&exceptionPrinter{out: os.Stderr, colours: config.Colours})

	// 4. Scripted conversation
	if err = converse(ctx, directory, config); err != nil {
		_ = exceptions.Fire(ctx, "conversation", err)
		return fmt.Errorf("conversation failed: %w", err)
	}

	// 5. Concurrent senders
	if err = flood(ctx, log, directory, config); err != nil {
		_ = exceptions.Fire(ctx, "flood", err)
		return fmt.Errorf("flood failed: %w", err)
	}

	// 6. Summary
	printSummary(os.Stdout, directory)
	log.Info("Program stopped cleanly", "rooms", directory.Len())
	return nil
}
