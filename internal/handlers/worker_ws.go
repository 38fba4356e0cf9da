package handlers

import (
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/gigworkers/gigworkers_be/internal/realtime"
)

type WorkerStreamHandler struct {
	Hub *realtime.Hub
}

func NewWorkerStreamHandler(hub *realtime.Hub) *WorkerStreamHandler {
	return &WorkerStreamHandler{Hub: hub}
}

// WebSocketHandler streams worker.updated events to any listener, so open
// listings and detail pages can refetch when a record changes.
func (h *WorkerStreamHandler) WebSocketHandler(c *websocket.Conn) {
	client := &realtime.Client{
		ID:   uuid.New().String(),
		Conn: &realtime.WebSocketConn{Conn: c},
		Send: make(chan []byte, 256),
	}

	h.Hub.RegisterClient(client)
	defer func() {
		h.Hub.UnregisterClient(client)
		log.Printf("WebSocket: listener %s disconnected\n", client.ID)
	}()

	// Send events from hub to client
	go func() {
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Println("WebSocket write error:", err)
				return
			}
		}
	}()

	// Read messages from client (keep connection alive)
	for {
		var payload map[string]interface{}
		if err := c.ReadJSON(&payload); err != nil {
			break
		}
		if msgType, ok := payload["type"].(string); ok && msgType == "pong" {
			continue
		}
	}
}
