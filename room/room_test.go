package room

import (
	"errors"
	"testing"

	"github.com/mo-shahab/go-pong/client"
)

func TestJoinAndRemove(t *testing.T) {
	rm := NewRoomManager()
	roomId := rm.CreateRoom(2)

	if len(roomId) != 6 {
		t.Errorf("expected a 6 character room id, got %q", roomId)
	}

	a, b, c := client.New(nil, 1), client.New(nil, 1), client.New(nil, 1)

	if err := rm.JoinRoom(roomId, a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.RoomId != roomId {
		t.Errorf("expected client room id %q, got %q", roomId, a.RoomId)
	}
	if err := rm.JoinRoom(roomId, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rm.JoinRoom(roomId, c); !errors.Is(err, ErrRoomFull) {
		t.Errorf("expected ErrRoomFull, got %v", err)
	}

	rm.RemoveClient(roomId, a.ID)
	if err := rm.JoinRoom(roomId, c); err != nil {
		t.Errorf("expected a free seat after removal, got %v", err)
	}

	room, ok := rm.GetRoom(roomId)
	if !ok || len(room.Members()) != 2 {
		t.Errorf("expected 2 members, got %v", room)
	}
}

func TestJoinUnknownRoom(t *testing.T) {
	rm := NewRoomManager()
	if err := rm.JoinRoom("nope", client.New(nil, 1)); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestUnlimitedRoom(t *testing.T) {
	rm := NewRoomManager()
	roomId := rm.CreateRoom(0)

	for i := 0; i < 50; i++ {
		if err := rm.JoinRoom(roomId, client.New(nil, 1)); err != nil {
			t.Fatalf("join %d: unexpected error: %v", i, err)
		}
	}
}

func TestCloseRoom(t *testing.T) {
	rm := NewRoomManager()
	roomId := rm.CreateRoom(0)
	rm.JoinRoom(roomId, client.New(nil, 1))

	if clients := rm.CloseRoom(roomId); len(clients) != 1 {
		t.Errorf("expected 1 client returned, got %d", len(clients))
	}
	if _, ok := rm.GetRoom(roomId); ok {
		t.Error("expected the room to be gone")
	}
	if clients := rm.CloseRoom(roomId); clients != nil {
		t.Error("expected closing twice to return nothing")
	}
}
