package main

import (
	"chat-observer/chat"
	"chat-observer/domain"
	"chat-observer/internal"
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const floodRoom = "Flood room"

// flood lets several participants talk at the same time in one room and
// checks that nothing was lost on the way.
func flood(ctx context.Context, log *slog.Logger, directory *chat.Directory[domain.Message], config internal.Config) error {
	welcome, err := domain.NewMessage(floodRoom, "system", config.WelcomeMessage)
	if err != nil {
		return err
	}
	room, err := directory.GetOrCreate(floodRoom, welcome)
	if err != nil {
		return err
	}

	users := make([]*chat.User[domain.Message], 0, config.ConcurrentSenders)
	counters := make([]*counter, 0, config.ConcurrentSenders)
	for i := range config.ConcurrentSenders {
		p, err := domain.NewParticipant(fmt.Sprintf("sender-%d", i))
		if err != nil {
			return err
		}
		c := &counter{}
		u, err := chat.NewUser[domain.Message](room, p, c)
		if err != nil {
			return err
		}
		users = append(users, u)
		counters = append(counters, c)
	}

	start := time.Now()
	g, gCtx := errgroup.WithContext(ctx)
	for _, u := range users {
		g.Go(func() error {
			for i := range config.MessagesPerSender {
				message, err := domain.NewMessage(floodRoom, u.Identity().DisplayName(), fmt.Sprintf("message %d", i))
				if err != nil {
					return err
				}
				if err := u.Send(gCtx, message); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	expected := config.ConcurrentSenders * config.MessagesPerSender
	if got := len(room.MessageHistory()); got != expected {
		return fmt.Errorf("history holds %d messages, expected %d", got, expected)
	}
	for i, c := range counters {
		if got := int(c.received.Load()); got != expected {
			return fmt.Errorf("sender-%d received %d messages, expected %d", i, got, expected)
		}
	}
	log.Info("Flood done",
		"senders", config.ConcurrentSenders,
		"messages", expected,
		"elapsed", time.Since(start))
	return nil
}
