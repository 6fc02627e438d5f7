// Package domain contains the collaborators of the chat core.
// This file defines Participant, the identity a chat room user stands for.
// The core never looks inside it.
package domain

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type Participant struct {
	ID   uuid.UUID
	Name string `validate:"required,max=64"`
}

func NewParticipant(name string) (Participant, error) {
	p := Participant{ID: uuid.New(), Name: name}
	if err := validate.Struct(p); err != nil {
		return Participant{}, err
	}
	return p, nil
}

func (p Participant) DisplayName() string {
	return p.Name
}
