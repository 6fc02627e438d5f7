package chat

import (
	"bytes"
	"chat-observer/contract"
	"chat-observer/errors"
	"chat-observer/mocks"
	"chat-observer/observer"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

type nick string

func (n nick) DisplayName() string {
	return string(n)
}

// inbox is a reaction keeping every message a user received.
type inbox[M any] struct {
	mu       sync.Mutex
	messages []M
}

func (i *inbox[M]) Execute(_ context.Context, message M) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.messages = append(i.messages, message)
	return nil
}

func (i *inbox[M]) Messages() []M {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]M(nil), i.messages...)
}

func TestNewRoom_Requires_A_Name(t *testing.T) {
	req := require.New(t)

	_, err := NewRoom[string](slog.Default(), "")
	req.ErrorIs(err, errors.ErrEmptyRoomName)

	_, err = NewRoomWithValue(slog.Default(), "welcome", "")
	req.ErrorIs(err, errors.ErrEmptyRoomName)
}

func TestRoom_History_Without_Users(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	room, err := NewRoom[string](log, "lobby")
	req.NoError(err)
	ctx := context.Background()

	// Given a room nobody joined
	req.Zero(room.Size())
	_, ok := room.Value()
	req.False(ok)

	// When messages are set, including a repeated one
	for _, m := range []string{"a", "b", "b", "c"} {
		req.NoError(room.SetValue(ctx, m))
	}

	// Then the history keeps all of them in call order
	req.Equal([]string{"a", "b", "b", "c"}, room.MessageHistory())
	value, _ := room.Value()
	req.Equal("c", value)
}

func TestRoom_Initial_Value_Is_Not_History(t *testing.T) {
	req := require.New(t)
	room, err := NewRoomWithValue(slog.Default(), "Welcome in this chat room", "first")
	req.NoError(err)

	value, ok := room.Value()
	req.True(ok)
	req.Equal("Welcome in this chat room", value)
	req.Empty(room.MessageHistory())
	req.Equal("first", room.Name())
	req.False(room.IsSecure())
}

func TestRoom_History_Is_A_Copy(t *testing.T) {
	req := require.New(t)
	room, err := NewRoom[string](slog.Default(), "lobby")
	req.NoError(err)
	req.NoError(room.SetValue(context.Background(), "hi"))

	history := room.MessageHistory()
	history[0] = "changed"

	req.Equal([]string{"hi"}, room.MessageHistory())
}

func TestRoom_History_Grows_Even_When_A_User_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	room, err := NewRoom[string](slog.Default(), "lobby")
	req.NoError(err)
	boom := fmt.Errorf("boom")

	first := mocks.NewMockReaction[string](ctrl)
	second := mocks.NewMockReaction[string](ctrl)
	third := mocks.NewMockReaction[string](ctrl)
	for i, reaction := range []contract.Reaction[string]{first, second, third} {
		_, err := NewUser[string](room, nick(fmt.Sprintf("user-%d", i)), reaction)
		req.NoError(err)
	}

	// Given the second user fails on reception
	gomock.InOrder(
		first.EXPECT().Execute(gomock.Any(), "hi").Return(nil),
		second.EXPECT().Execute(gomock.Any(), "hi").Return(boom),
	)
	third.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

	// When a message is sent
	err = room.SetValue(context.Background(), "hi")

	// Then the caller sees the failure and the third user is skipped
	req.ErrorIs(err, boom)
	req.ErrorIs(err, errors.ErrListenerFailed)
	// And the message is still in the history
	req.Equal([]string{"hi"}, room.MessageHistory())
}

func TestRoom_Isolate_Policy_Reaches_Every_User(t *testing.T) {
	req := require.New(t)
	room, err := NewRoom[string](slog.Default(), "lobby", observer.WithPolicy(observer.Isolate))
	req.NoError(err)
	boom := fmt.Errorf("boom")

	failing := observer.ReactionFunc[string](func(context.Context, string) error { return boom })
	_, err = NewUser[string](room, nick("grumpy"), failing)
	req.NoError(err)
	box := &inbox[string]{}
	_, err = NewUser[string](room, nick("happy"), box)
	req.NoError(err)

	err = room.SetValue(context.Background(), "hi")

	req.ErrorIs(err, boom)
	req.Equal([]string{"hi"}, box.Messages())
}

func TestRoom_ChatRoomUsers_In_Join_Order(t *testing.T) {
	req := require.New(t)
	room, err := NewRoom[string](slog.Default(), "lobby")
	req.NoError(err)

	var users []*User[string]
	for _, name := range []string{"anton", "john", "alfred"} {
		u, err := NewUser[string](room, nick(name), &inbox[string]{})
		req.NoError(err)
		users = append(users, u)
	}
	req.Equal(3, room.Size())
	req.Equal([]contract.Identity{nick("anton"), nick("john"), nick("alfred")}, room.ChatRoomUsers())

	// When two of them are removed, one of them twice
	room.RemoveAll(users[0], users[2], users[2])

	// Then only john is left
	req.Equal(1, room.Size())
	req.Equal([]contract.Identity{nick("john")}, room.ChatRoomUsers())

	// When anton is added back
	room.AddAll(users[0])
	req.Equal([]contract.Identity{nick("john"), nick("anton")}, room.ChatRoomUsers())
}

func TestRoom_Add_Ignores_Users_Of_Another_Room(t *testing.T) {
	req := require.New(t)
	lobby, err := NewRoom[string](slog.Default(), "lobby")
	req.NoError(err)
	garden, err := NewRoom[string](slog.Default(), "garden")
	req.NoError(err)
	stranger, err := NewUser[string](garden, nick("stranger"), &inbox[string]{})
	req.NoError(err)

	lobby.Add(stranger)
	lobby.AddAll(nil)

	req.Zero(lobby.Size())
	req.Equal(1, garden.Size())
}

func TestRoom_AddAll_Logs_Why_A_User_Is_Ignored(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, nil))
	lobby, err := NewRoom[string](log, "lobby")
	req.NoError(err)
	garden, err := NewRoom[string](slog.Default(), "garden")
	req.NoError(err)
	stranger, err := NewUser[string](garden, nick("stranger"), &inbox[string]{})
	req.NoError(err)

	// When a nil user is added
	lobby.AddAll(nil)

	// Then the warning names the nil user, not another room
	req.Contains(out.String(), "Ignoring nil user")
	req.NotContains(out.String(), "another room")

	// When a user of another room is added
	out.Reset()
	lobby.Add(stranger)

	// Then the warning names that user and its room
	req.Contains(out.String(), "Ignoring user bound to another room")
	req.Contains(out.String(), "user=stranger")
	req.Contains(out.String(), "other_room=garden")
	req.Zero(lobby.Size())
}

func TestRoom_Reaction_Sending_Into_Its_Own_Room_Is_Rejected(t *testing.T) {
	req := require.New(t)
	room, err := NewRoom[string](slog.Default(), "lobby")
	req.NoError(err)
	ctx := context.Background()

	// Given a user that answers every message in the same room
	var parrot *User[string]
	var echoErr error
	parrot, err = NewUser[string](room, nick("parrot"),
		observer.ReactionFunc[string](func(ctx context.Context, message string) error {
			echoErr = parrot.Send(ctx, "echo "+message)
			return nil
		}))
	req.NoError(err)
	alice, err := NewUser[string](room, nick("alice"), &inbox[string]{})
	req.NoError(err)

	// When another user sends a message
	req.NoError(alice.Send(ctx, "hi"))

	// Then the answer is rejected and never reaches the history
	req.ErrorIs(echoErr, errors.ErrReentrantNotification)
	req.Equal([]string{"hi"}, room.MessageHistory())
	req.Equal("hi", parrot.LastSeenValue())
}

func TestRoom_Concurrent_Senders_Share_One_Order(t *testing.T) {
	req := require.New(t)
	room, err := NewRoom[int](slog.Default(), "busy")
	req.NoError(err)

	var boxes []*inbox[int]
	var users []*User[int]
	for i := range 3 {
		box := &inbox[int]{}
		u, err := NewUser[int](room, nick(fmt.Sprintf("user-%d", i)), box)
		req.NoError(err)
		boxes = append(boxes, box)
		users = append(users, u)
	}

	perSender := 100
	g, ctx := errgroup.WithContext(context.Background())
	for s, u := range users {
		g.Go(func() error {
			for i := range perSender {
				if err := u.Send(ctx, s*perSender+i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	req.NoError(g.Wait())

	// Then every user received the messages in exactly the history order
	history := room.MessageHistory()
	req.Len(history, len(users)*perSender)
	for _, box := range boxes {
		req.Equal(history, box.Messages())
	}
}
