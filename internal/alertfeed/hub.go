// Package alertfeed fans alert events out to connected counselor
// websocket clients. Events arrive via the Redis alerts feed channel,
// so every server instance sees alerts created on any instance.
package alertfeed

import (
	"encoding/json"
	"log"

	"manmitra/backend/internal/models"
	"manmitra/backend/internal/storage"
)

// Hub is the central dispatcher for the counselor alert feed.
type Hub struct {
	// Clients is keyed by connection ID, not counselor ID: one
	// counselor may hold several tabs open.
	Clients map[string]*WebSocketClient

	RegisterCh   chan *WebSocketClient
	UnregisterCh chan *WebSocketClient

	Storage *storage.Service

	eventCh chan models.AlertEvent
}

// NewHub creates a new alert feed hub.
func NewHub(s *storage.Service) *Hub {
	return &Hub{
		Clients:      make(map[string]*WebSocketClient),
		RegisterCh:   make(chan *WebSocketClient),
		UnregisterCh: make(chan *WebSocketClient),
		Storage:      s,
		eventCh:      make(chan models.AlertEvent),
	}
}

// startPubSubListener subscribes to the Redis alerts feed channel and
// forwards decoded events into the hub's event channel.
func (h *Hub) startPubSubListener() {
	go func() {
		pubsub := h.Storage.SubscribeAlertEvents()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var event models.AlertEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("ERROR: Failed to unmarshal alert event: %v", err)
				continue
			}
			h.eventCh <- event
		}
	}()
}

// Run is the hub's main dispatch loop. Slow clients are dropped so
// one stuck connection cannot stall the feed for everyone else.
func (h *Hub) Run() {
	h.startPubSubListener()
	log.Println("Alert feed hub started.")

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.ConnID] = client
			log.Printf("INFO: Counselor %s connected to alert feed.", client.CounselorID)

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.ConnID]; ok {
				delete(h.Clients, client.ConnID)
				close(client.Send)
			}

		case event := <-h.eventCh:
			for connID, client := range h.Clients {
				select {
				case client.Send <- event:
				default:
					delete(h.Clients, connID)
					close(client.Send)
				}
			}
		}
	}
}
