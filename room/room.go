package room

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/mo-shahab/go-pong/client"
)

var (
	ErrRoomNotFound = errors.New("room id is invalid")
	ErrRoomFull     = errors.New("room is full")
)

// Room is the audience of one match
type Room struct {
	ID         string
	Clients    map[string]*client.Client
	MaxViewers int
	Mu         sync.Mutex
}

// state of all the rooms
type RoomManager struct {
	Rooms map[string]*Room
	Mu    sync.Mutex
}

func NewRoomManager() *RoomManager {
	return &RoomManager{
		Rooms: make(map[string]*Room),
	}
}

// helpers
func generateRoomId() string {
	return uuid.New().String()[:6]
}

// CreateRoom opens a room and returns its id. maxViewers <= 0 means unlimited.
func (rm *RoomManager) CreateRoom(maxViewers int) string {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	roomId := generateRoomId()
	for {
		if _, taken := rm.Rooms[roomId]; !taken {
			break
		}
		roomId = generateRoomId()
	}

	rm.Rooms[roomId] = &Room{
		ID:         roomId,
		Clients:    make(map[string]*client.Client),
		MaxViewers: maxViewers,
	}
	log.Printf("Created room %s (max viewers %d)", roomId, maxViewers)

	return roomId
}

func (rm *RoomManager) JoinRoom(roomId string, c *client.Client) error {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return ErrRoomNotFound
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.MaxViewers > 0 && len(room.Clients) >= room.MaxViewers {
		return ErrRoomFull
	}

	room.Clients[c.ID] = c
	c.RoomId = roomId
	log.Printf("Client %s joined room %s", c.ID, roomId)

	return nil
}

func (rm *RoomManager) RemoveClient(roomId string, clientId string) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	delete(room.Clients, clientId)
}

// CloseRoom deletes the room and returns the clients that were in it
func (rm *RoomManager) CloseRoom(roomId string) []*client.Client {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return nil
	}
	delete(rm.Rooms, roomId)

	clients := room.Members()
	log.Printf("Room %s has been closed", roomId)
	return clients
}

func (rm *RoomManager) GetRoom(roomId string) (*Room, bool) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]

	return room, exists
}

// Members returns the current clients of the room
func (r *Room) Members() []*client.Client {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	clients := make([]*client.Client, 0, len(r.Clients))
	for _, c := range r.Clients {
		clients = append(clients, c)
	}
	return clients
}
