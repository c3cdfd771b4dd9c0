package wsserver

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/room"
)

// Options configures a Handler
type Options struct {
	// MaxViewers caps the default room; 0 means unlimited
	MaxViewers int
	// FrameStride sends every Nth frame; values below 1 send all of them
	FrameStride uint64
	QueueSize   int
	Canvas      canvas.Canvas
}

// Handler serves the read-only spectator feed of one local match
type Handler struct {
	Upgrader    websocket.Upgrader
	RoomManager *room.RoomManager
	RoomId      string
	Connections map[string]*client.Client
	Mu          sync.Mutex

	options Options
	closed  bool
}
