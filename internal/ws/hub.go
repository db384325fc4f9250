package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"dochub/internal/models"
)

const pkg = "ws/"

// Hub fans applied document updates out to the live subscribers of each
// document. Subscribers are read-only: edits go through the apply endpoint,
// the hub only notifies.
type Hub struct {
	log        *slog.Logger
	register   chan *Client
	unregister chan *Client
	broadcast  chan models.DocUpdate
	done       chan struct{}

	mu    sync.Mutex
	rooms map[string]map[*Client]bool
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.DocUpdate, 64),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// subscribe hands a client to the hub loop. Returns false if the hub has
// already stopped.
func (h *Hub) subscribe(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// drop asks the hub loop to unregister a client. Never blocks after the
// hub has stopped, so client pumps can always exit.
func (h *Hub) drop(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// BroadcastUpdate queues an update for fan-out. Drops the update if the hub
// is saturated rather than blocking the apply path.
func (h *Hub) BroadcastUpdate(update models.DocUpdate) {
	select {
	case h.broadcast <- update:
	default:
		h.log.Warn("update broadcast dropped, hub saturated", slog.String("doc_id", update.DocID))
	}
}

func (h *Hub) Run(ctx context.Context) {
	op := pkg + "Run"

	log := h.log.With(slog.String("op", op))

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.docID] == nil {
				h.rooms[client.docID] = make(map[*Client]bool)
			}
			h.rooms[client.docID][client] = true
			h.mu.Unlock()

			log.Debug("client subscribed", slog.String("doc_id", client.docID), slog.String("user_id", client.userID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.rooms[client.docID][client]; ok {
				delete(h.rooms[client.docID], client)
				close(client.send)

				if len(h.rooms[client.docID]) == 0 {
					delete(h.rooms, client.docID)
				}
			}
			h.mu.Unlock()

			log.Debug("client unsubscribed", slog.String("doc_id", client.docID), slog.String("user_id", client.userID))

		case update := <-h.broadcast:
			payload, err := json.Marshal(update)
			if err != nil {
				log.Error("failed to marshal update", slog.String("error", err.Error()))
				continue
			}

			h.mu.Lock()
			recipients := make([]*Client, 0, len(h.rooms[update.DocID]))
			for client := range h.rooms[update.DocID] {
				if client.userID != update.ActorID {
					recipients = append(recipients, client)
				}
			}
			h.mu.Unlock()

			for _, client := range recipients {
				select {
				case client.send <- payload:
				default:
					// Lagging client, drop it instead of blocking the hub.
					log.Warn("client send buffer full, dropping", slog.String("user_id", client.userID))
					go h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for docID, room := range h.rooms {
		for client := range room {
			close(client.send)
		}
		delete(h.rooms, docID)
	}
}
