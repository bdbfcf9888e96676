// Package livesync turns the ticket document store into a live one: writers
// publish change signals on a hub and watchers reload and push snapshots.
package livesync

import (
	"sync"
)

// Hub fans change signals out to subscribers of a topic. Signals carry no
// payload and coalesce: a subscriber that has not consumed the previous
// signal does not queue another one.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*listener]struct{}
}

type listener struct {
	signal chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*listener]struct{}),
	}
}

func (h *Hub) listen(topics ...string) *listener {
	l := &listener{signal: make(chan struct{}, 1)}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, topic := range topics {
		set, ok := h.subs[topic]
		if !ok {
			set = make(map[*listener]struct{})
			h.subs[topic] = set
		}
		set[l] = struct{}{}
	}
	return l
}

func (h *Hub) forget(l *listener, topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, topic := range topics {
		set := h.subs[topic]
		delete(set, l)
		if len(set) == 0 {
			delete(h.subs, topic)
		}
	}
}

// Publish signals every listener of topic without blocking.
func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for l := range h.subs[topic] {
		select {
		case l.signal <- struct{}{}:
		default:
		}
	}
}

// Listeners returns the number of listeners registered for topic.
func (h *Hub) Listeners(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[topic])
}

func TicketTopic(ticketId string) string {
	return "ticket/" + ticketId
}

func CommentsTopic(ticketId string) string {
	return "ticket/" + ticketId + "/comments"
}
