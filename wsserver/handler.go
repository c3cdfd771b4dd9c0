// wsserver/handler.go

package wsserver

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/game"
	"github.com/mo-shahab/go-pong/paddle"
	pb "github.com/mo-shahab/go-pong/proto"
	"github.com/mo-shahab/go-pong/room"
	"github.com/mo-shahab/go-pong/scores"
	"google.golang.org/protobuf/proto"
)

// NewHandler creates a spectator handler with one room for the local match
func NewHandler(options Options) *Handler {
	if options.FrameStride < 1 {
		options.FrameStride = 1
	}

	rooms := room.NewRoomManager()
	handler := &Handler{
		Upgrader:    websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		RoomManager: rooms,
		Connections: make(map[string]*client.Client),
		options:     options,
	}
	handler.RoomId = rooms.CreateRoom(options.MaxViewers)

	return handler
}

// GameEventHandler interface implementation
func (wsh *Handler) OnFrame(snapshot game.Snapshot) {
	if snapshot.Tick%wsh.options.FrameStride != 0 {
		return
	}

	frame := &pb.FrameMessage{
		Tick: snapshot.Tick,
		Ball: &pb.Ball{
			X:      snapshot.Ball.X,
			Y:      snapshot.Ball.Y,
			Radius: snapshot.Ball.Radius,
		},
		LeftPaddle:  snapshot.LeftPaddle.Y,
		RightPaddle: snapshot.RightPaddle.Y,
		LeftScore:   snapshot.Scores.LeftScores,
		RightScore:  snapshot.Scores.RightScores,
		Paused:      snapshot.Round == game.Paused,
		Ended:       snapshot.Round == game.Ended,
	}

	wrappedMessage := &pb.Message{
		Type:        pb.MsgType_frame,
		MessageType: &pb.Message_Frame{Frame: frame},
	}

	message, err := proto.Marshal(wrappedMessage)
	if err != nil {
		log.Printf("Failed to encode frame message: %v", err)
		return
	}

	wsh.broadcastToRoom(wsh.RoomId, message)
}

func (wsh *Handler) OnScore(score scores.Scores, whoScored scores.Side) {
	scoreUpdate := &pb.ScoreMessage{
		LeftScore:  score.LeftScores,
		RightScore: score.RightScores,
		Scored:     whoScored.String(),
	}

	wrappedMessage := &pb.Message{
		Type:        pb.MsgType_score,
		MessageType: &pb.Message_Score{Score: scoreUpdate},
	}

	encoded, err := proto.Marshal(wrappedMessage)
	if err != nil {
		log.Printf("Failed to marshal score message: %v", err)
		return
	}

	wsh.broadcastToRoom(wsh.RoomId, encoded)
}

func (wsh *Handler) OnPauseChanged(paused bool) {
	encoded, err := proto.Marshal(&pb.Message{
		Type:        pb.MsgType_pause,
		MessageType: &pb.Message_Pause{Pause: &pb.PauseMessage{Paused: paused}},
	})
	if err != nil {
		log.Printf("Failed to marshal pause message: %v", err)
		return
	}

	wsh.broadcastToRoom(wsh.RoomId, encoded)
}

// Broadcast functions
func (wsh *Handler) broadcastToRoom(roomId string, message []byte) {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()

	for _, c := range wsh.Connections {
		if c.RoomId != roomId {
			continue
		}
		if !c.Enqueue(message) {
			log.Printf("Dropping message, send queue full for client %s", c.ID)
		}
	}
}

// ServeHTTP handles spectator connections on /ws?room=<id>
func (wsh *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error %s when connecting to the socket", err)
		return
	}

	roomId := r.URL.Query().Get("room")
	if roomId == "" {
		roomId = wsh.RoomId
	}

	c := client.New(conn, wsh.options.QueueSize)

	if err := wsh.RoomManager.JoinRoom(roomId, c); err != nil {
		log.Printf("Client %s failed to join room %s: %v", c.ID, roomId, err)
		wsh.rejectConn(conn, err.Error())
		return
	}

	// welcome goes first so it precedes any broadcast frame
	if welcome, err := wsh.welcome(c); err != nil {
		log.Printf("Failed to marshal welcome message: %v", err)
	} else {
		c.Enqueue(welcome)
	}

	wsh.Mu.Lock()
	if wsh.closed {
		wsh.Mu.Unlock()
		wsh.RoomManager.RemoveClient(roomId, c.ID)
		wsh.rejectConn(conn, "server is shutting down")
		return
	}
	wsh.Connections[c.ID] = c
	log.Printf("Viewer %s connected, total viewers: %d", c.ID, len(wsh.Connections))
	wsh.Mu.Unlock()

	go wsh.writePump(c)

	// Viewers are read-only: drain inbound frames until the peer goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("Error reading message: %v", err)
			wsh.disconnectClient(c)
			return
		}
	}
}

// writePump is the message queue goroutine of one client
func (wsh *Handler) writePump(c *client.Client) {
	for msg := range c.SendQueue {
		if err := c.Conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			log.Printf("Binary message write error: %v", err)
			wsh.disconnectClient(c)
			return
		}
	}
	c.Conn.Close()
}

func (wsh *Handler) welcome(c *client.Client) ([]byte, error) {
	welcome := &pb.WelcomeMessage{
		ClientId:     c.ID,
		RoomId:       c.RoomId,
		Width:        wsh.options.Canvas.Width,
		Height:       wsh.options.Canvas.Height,
		PaddleWidth:  paddle.Width,
		PaddleHeight: paddle.Height,
	}

	return proto.Marshal(&pb.Message{
		Type:        pb.MsgType_welcome,
		MessageType: &pb.Message_Welcome{Welcome: welcome},
	})
}

// rejectConn writes an error message straight to conn and closes it
func (wsh *Handler) rejectConn(conn *websocket.Conn, errorMsg string) {
	defer conn.Close()

	encoded, err := proto.Marshal(&pb.Message{
		Type:        pb.MsgType_error,
		MessageType: &pb.Message_Error{Error: &pb.ErrorMessage{Error: errorMsg}},
	})
	if err != nil {
		log.Printf("Failed to marshal error message: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, encoded); err != nil {
		log.Printf("Failed to send error message: %v", err)
	}
}

// disconnectClient handles viewer disconnection
func (wsh *Handler) disconnectClient(c *client.Client) {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()

	if _, exists := wsh.Connections[c.ID]; !exists {
		return
	}

	wsh.RoomManager.RemoveClient(c.RoomId, c.ID)
	delete(wsh.Connections, c.ID)
	c.Close()
	c.Conn.Close()

	log.Printf("Viewer %s disconnected", c.ID)
}

// Viewers returns the number of connected viewers
func (wsh *Handler) Viewers() int {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()

	return len(wsh.Connections)
}

// Close disconnects every viewer and refuses new ones
func (wsh *Handler) Close() {
	wsh.Mu.Lock()
	wsh.closed = true
	wsh.Mu.Unlock()

	// members not yet registered are turned away by ServeHTTP once closed is set
	for _, c := range wsh.RoomManager.CloseRoom(wsh.RoomId) {
		wsh.disconnectClient(c)
	}
}
