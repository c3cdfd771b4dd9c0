package client

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// DefaultQueueSize bounds the messages buffered for a slow viewer
const DefaultQueueSize = 100

// Client is one spectator connection
type Client struct {
	Conn      *websocket.Conn
	SendQueue chan []byte
	ID        string
	RoomId    string

	mu     sync.Mutex
	closed bool
}

// New wraps conn with a fresh id and a send queue
func New(conn *websocket.Conn, queueSize int) *Client {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Client{
		Conn:      conn,
		SendQueue: make(chan []byte, queueSize),
		ID:        uuid.New().String(),
	}
}

// Enqueue queues msg without blocking. It returns false when the queue is
// full or the client is closed.
func (c *Client) Enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.SendQueue <- msg:
		return true
	default:
		return false
	}
}

// Close closes the send queue once; the writer drains what is left
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.SendQueue)
}
