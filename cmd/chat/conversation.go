package main

import (
	"chat-observer/chat"
	"chat-observer/domain"
	"chat-observer/internal"
	"context"
	"fmt"
	"os"

	"github.com/gookit/color"
)

const (
	firstRoom  = "First chat room"
	secondRoom = "Second chat room"
)

var palette = []color.Style{
	color.New(color.FgCyan),
	color.New(color.FgMagenta),
	color.New(color.FgGreen),
}

// converse replays a conversation where users join two rooms, talk and leave.
func converse(ctx context.Context, directory *chat.Directory[domain.Message], config internal.Config) error {
	rooms := make(map[string]*chat.Room[domain.Message])
	for _, name := range []string{firstRoom, secondRoom} {
		welcome, err := domain.NewMessage(name, "system", config.WelcomeMessage)
		if err != nil {
			return err
		}
		room, err := directory.GetOrCreate(name, welcome)
		if err != nil {
			return err
		}
		rooms[name] = room
	}

	participants := make(map[string]domain.Participant)
	for _, name := range []string{"anton", "john", "alfred"} {
		p, err := domain.NewParticipant(name)
		if err != nil {
			return err
		}
		participants[name] = p
	}

	join := func(room, name string, style color.Style) (*chat.User[domain.Message], error) {
		reaction := &consoleReaction{out: os.Stdout, viewer: name, style: style, colours: config.Colours}
		return chat.NewUser[domain.Message](rooms[room], participants[name], reaction)
	}
	antonFirst, err := join(firstRoom, "anton", palette[0])
	if err != nil {
		return err
	}
	johnFirst, err := join(firstRoom, "john", palette[1])
	if err != nil {
		return err
	}
	alfredFirst, err := join(firstRoom, "alfred", palette[2])
	if err != nil {
		return err
	}
	antonSecond, err := join(secondRoom, "anton", palette[0])
	if err != nil {
		return err
	}
	johnSecond, err := join(secondRoom, "john", palette[1])
	if err != nil {
		return err
	}

	steps := []struct {
		from  *chat.User[domain.Message]
		text  string
		leave bool
	}{
		{from: antonFirst, text: "Hello everybody"},
		{from: antonSecond, text: "Hello everybody"},
		{from: johnFirst, text: "Hello anton"},
		{from: johnSecond, text: "Hello anton"},
		{from: alfredFirst, text: "Hello anton and john. Im alfred."},
		{from: antonFirst, text: "Im leaving this room", leave: true},
		{from: alfredFirst, text: "how old are you John"},
		{from: johnFirst, text: "Im leaving this room", leave: true},
		{from: alfredFirst, text: "im alone now :-(("},
		{from: alfredFirst, text: "Im leaving this room too...", leave: true},
	}
	for _, step := range steps {
		if err := say(ctx, step.from, step.text); err != nil {
			return err
		}
		if step.leave {
			step.from.Leave()
		}
	}
	return nil
}

func say(ctx context.Context, from *chat.User[domain.Message], text string) error {
	room := from.Room()
	author := from.Identity().DisplayName()
	message, err := domain.NewMessage(room.Name(), author, text)
	if err != nil {
		return err
	}
	fmt.Printf("########## New message in '%s' ##########\n%s tells: %s\n", room.Name(), author, text)
	return from.Send(ctx, message)
}
