package errors

import "fmt"

var (
	ErrNilSubject            = fmt.Errorf("subject is nil")
	ErrNilRoom               = fmt.Errorf("chat room is nil")
	ErrNilIdentity           = fmt.Errorf("user identity is nil")
	ErrNilReaction           = fmt.Errorf("reaction is nil")
	ErrAlreadyBound          = fmt.Errorf("observer is already bound to a subject")
	ErrEmptyRoomName         = fmt.Errorf("chat room name is empty")
	ErrInvalidPolicy         = fmt.Errorf("unknown notification policy")
	ErrListenerFailed        = fmt.Errorf("listener failed during notification")
	ErrReentrantNotification = fmt.Errorf("subject mutated from inside its own notification")
)
