// Package domain contains the collaborators of the chat core.
// This file defines Message, the payload carried through a chat room.
// Messages are immutable once built.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one post in a chat room.
type Message struct {
	ID        uuid.UUID // unique identifier
	Room      string    `validate:"required"`
	Author    string    `validate:"required"`
	Content   string    `validate:"required_without=Data"`
	Data      []byte
	CreatedAt time.Time
}

func NewMessage(room, author, content string) (Message, error) {
	return newMessage(room, author, content, nil)
}

// NewBinaryMessage builds a message carrying raw data next to an optional caption.
func NewBinaryMessage(room, author, caption string, data []byte) (Message, error) {
	return newMessage(room, author, caption, data)
}

func newMessage(room, author, content string, data []byte) (Message, error) {
	m := Message{
		ID:        uuid.New(),
		Room:      room,
		Author:    author,
		Content:   content,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := validate.Struct(m); err != nil {
		return Message{}, err
	}
	return m, nil
}
