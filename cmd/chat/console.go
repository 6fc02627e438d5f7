package main

import (
	"chat-observer/domain"
	"chat-observer/exception"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/gookit/color"
)

var separator = strings.Repeat("-", 46)

// consoleReaction prints every message a user sees.
type consoleReaction struct {
	out     io.Writer
	viewer  string
	style   color.Style
	colours bool
}

func (c *consoleReaction) Execute(_ context.Context, message domain.Message) error {
	display := fmt.Sprintf("%s\n%s sees the message from %s:\n%s\n%s",
		separator, c.viewer, message.Author, message.Content, separator)
	if c.colours {
		display = c.style.Render(display)
	}
	_, err := fmt.Fprintln(c.out, display)
	return err
}

// counter only counts the messages it receives.
type counter struct {
	received atomic.Int64
}

func (c *counter) Execute(context.Context, domain.Message) error {
	c.received.Add(1)
	return nil
}

// exceptionPrinter reports failures on the error output.
type exceptionPrinter struct {
	out     io.Writer
	colours bool
}

func (e *exceptionPrinter) Receive(_ context.Context, evt exception.Event) error {
	line := fmt.Sprintf("[%s] %s failed: %v", evt.At.Format("15:04:05"), evt.Source, evt.Err)
	if e.colours {
		line = color.New(color.BgBlack, color.FgRed).Render(line)
	}
	_, err := fmt.Fprintln(e.out, line)
	return err
}
