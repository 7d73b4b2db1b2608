package websocket

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Sink is the write half of a client connection. The contrib websocket.Conn
// satisfies it; tests plug in fakes.
type Sink interface {
	WriteJSON(v interface{}) error
}

type Client struct {
	UserID uuid.UUID
	Conn   Sink

	mu sync.Mutex
}

// Send is the only path to the underlying connection once a client is
// registered. The websocket contract allows a single writer at a time, and
// frames arrive from both the hub and the connection's own read loop.
func (c *Client) Send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteJSON(v)
}

// Event is the frame delivered to subscribers: a topic name and the full
// snapshot for that topic. Each delivery supersedes the previous one.
type Event struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

// Topic names mirror the collections a client can watch. Per-user topics are
// derived server-side from the authenticated identity, never from client input.
const TopicCourses = "courses"

func TopicRequestsReceived(userID uuid.UUID) string {
	return "requests:received:" + userID.String()
}

func TopicRequestsSent(userID uuid.UUID) string {
	return "requests:sent:" + userID.String()
}

func TopicLearning(userID uuid.UUID) string {
	return "learning:" + userID.String()
}

func TopicChat(roomID string) string {
	return "chat:" + roomID
}

// Hub fans snapshots out to whatever clients currently watch a topic. It holds
// no storage of its own; callers build snapshots and publish them after every
// relevant write.
type Hub struct {
	mu      sync.RWMutex
	topics  map[string]map[*Client]bool
	clients map[*Client]map[string]bool
}

// Live is the hub the running server publishes through.
var Live = NewHub()

func NewHub() *Hub {
	return &Hub{
		topics:  make(map[string]map[*Client]bool),
		clients: make(map[*Client]map[string]bool),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = make(map[string]bool)
}

// Unregister drops the client and every subscription it held. Handlers must
// call this when the connection closes so no event lands on a dead socket.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic := range h.clients[c] {
		delete(h.topics[topic], c)
		if len(h.topics[topic]) == 0 {
			delete(h.topics, topic)
		}
	}
	delete(h.clients, c)
}

func (h *Hub) Subscribe(c *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]bool)
	}
	h.topics[topic][c] = true
	h.clients[c][topic] = true
}

func (h *Hub) Unsubscribe(c *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.topics[topic], c)
	if len(h.topics[topic]) == 0 {
		delete(h.topics, topic)
	}
	if subs, ok := h.clients[c]; ok {
		delete(subs, topic)
	}
}

// Publish delivers a fresh snapshot to every subscriber of the topic. A write
// failure evicts only the broken client; other subscribers and other topics
// are unaffected.
func (h *Hub) Publish(topic string, data interface{}) {
	h.mu.RLock()
	var failed []*Client
	for c := range h.topics[topic] {
		if err := c.Send(Event{Topic: topic, Data: data}); err != nil {
			log.Printf("Error sending snapshot on %s to client %s: %v", topic, c.UserID, err)
			failed = append(failed, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range failed {
		h.Unregister(c)
	}
}

func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
