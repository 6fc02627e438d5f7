package exception

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessages_Add_Keeps_A_Set_Per_Key(t *testing.T) {
	req := require.New(t)
	catalog := NewMessages[string]()
	notFound := Message[string]{PropertiesKey: "room.not.found", PropertiesValue: "Room {0} does not exist", Additions: []string{"lobby"}}

	// Given an empty catalog
	req.True(catalog.IsEmpty())
	_, ok := catalog.Get("room.not.found")
	req.False(ok)

	// When the same message is added twice and a variant once
	catalog.Add("room", notFound)
	catalog.Add("room", notFound)
	catalog.Add("room", Message[string]{PropertiesKey: "room.not.found", PropertiesValue: "Room {0} does not exist", Additions: []string{"garden"}})

	// Then equal messages are stored once
	values, ok := catalog.Get("room")
	req.True(ok)
	req.Len(values, 2)
	req.True(catalog.ContainsKey("room"))
	req.Equal(1, catalog.Len())
}

func TestMessages_AddAll_Merges(t *testing.T) {
	req := require.New(t)
	catalog := NewMessages[int]()
	catalog.Add("user", Message[int]{PropertiesKey: "user.unknown", ID: "1"})

	catalog.AddAll(map[string][]Message[int]{
		"user": {{PropertiesKey: "user.unknown", ID: "1"}, {PropertiesKey: "user.banned", ID: "2"}},
		"room": nil,
	})

	users, _ := catalog.Get("user")
	req.Len(users, 2)
	req.True(catalog.ContainsKey("room"))
	req.Equal([]string{"room", "user"}, catalog.Keys())
}

func TestMessages_Remove(t *testing.T) {
	req := require.New(t)
	catalog := NewMessages[string]()
	for _, key := range []string{"a", "b", "c"} {
		catalog.Add(key, Message[string]{PropertiesKey: key})
	}

	removed, ok := catalog.Remove("a")
	req.True(ok)
	req.Len(removed, 1)

	_, ok = catalog.Remove("a")
	req.False(ok)

	catalog.RemoveAll("b", "missing")
	req.Equal([]string{"c"}, catalog.Keys())
}
