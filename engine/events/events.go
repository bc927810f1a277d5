// Package events implements single-pass narration fan-out.
// Handlers may emit further events; those are queued and delivered after the
// current event instead of recursing.
package events

import (
	"github.com/nathoo/wayfarer/types"
)

// Handler receives one event.
type Handler func(types.Event)

type subscription struct {
	eventType string // empty matches every event
	handler   Handler
}

// Bus delivers each emitted event to its subscribers in subscription order.
// A Bus is a prompt.Sink.
type Bus struct {
	subs       []subscription
	queue      []types.Event
	dispatched bool
}

// NewBus creates a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for every event.
func (b *Bus) Subscribe(h Handler) {
	b.subs = append(b.subs, subscription{handler: h})
}

// SubscribeType registers h for events of one type.
func (b *Bus) SubscribeType(eventType string, h Handler) {
	b.subs = append(b.subs, subscription{eventType: eventType, handler: h})
}

// Emit delivers ev. Calls made from inside a handler are queued and drained
// by the outermost Emit.
func (b *Bus) Emit(ev types.Event) {
	b.queue = append(b.queue, ev)
	if b.dispatched {
		return
	}
	b.dispatched = true
	defer func() { b.dispatched = false }()

	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		for _, s := range b.subs {
			if s.eventType != "" && s.eventType != next.Type {
				continue
			}
			s.handler(next)
		}
	}
}
