package change

import (
	"github.com/google/uuid"

	"github.com/dshills/scanline/internal/engine/buffer"
	"github.com/dshills/scanline/internal/engine/cache"
)

// source identifies this package in event metadata.
const source = "change.coordinator"

// Listener receives tokens-changed events.
type Listener func(TokensChangedEvent)

// Subscription identifies a registered listener.
type Subscription struct {
	id string
}

// ID returns the subscription's unique identifier.
func (s Subscription) ID() string {
	return s.id
}

// entry pairs a subscription with its listener.
type entry struct {
	id       string
	listener Listener
}

// Coordinator reacts to buffer-change notifications, resets the token cache,
// and republishes tokens-changed events to subscribed listeners.
// Not safe for concurrent use; all methods run on the owner thread.
type Coordinator struct {
	buf   *buffer.Buffer
	cache *cache.TokenCache

	listeners []entry

	published    uint64
	staleDropped uint64
}

// NewCoordinator creates a coordinator over the given buffer and cache.
// It panics if either is nil: wiring a coordinator without its collaborators
// is a contract violation.
func NewCoordinator(buf *buffer.Buffer, c *cache.TokenCache) *Coordinator {
	if buf == nil || c == nil {
		panic("change: nil buffer or cache")
	}
	return &Coordinator{buf: buf, cache: c}
}

// Subscribe registers a listener for tokens-changed events.
func (c *Coordinator) Subscribe(fn Listener) (Subscription, error) {
	if fn == nil {
		return Subscription{}, ErrNilListener
	}
	sub := Subscription{id: uuid.NewString()}
	c.listeners = append(c.listeners, entry{id: sub.id, listener: fn})
	return sub, nil
}

// Unsubscribe removes a previously registered listener.
func (c *Coordinator) Unsubscribe(sub Subscription) error {
	for i, e := range c.listeners {
		if e.id == sub.id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// OnBufferChanged handles a buffer-change notification.
//
// A notification whose snapshot is no longer the buffer's current state is
// stale (out-of-order delivery) and is dropped without effect. Otherwise the
// token cache is reset and a tokens-changed event is published covering
// everything from the earliest edit position to the end of the buffer.
func (c *Coordinator) OnBufferChanged(note buffer.ChangeNotification) error {
	if note.Snapshot == nil {
		return ErrNilSnapshot
	}
	if note.Snapshot.RevisionID() != c.buf.Revision() {
		c.staleDropped++
		return nil
	}

	c.cache.Invalidate()

	affected := affectedStart(note.Edits)
	event := TokensChangedEvent{
		Revision: note.Snapshot.RevisionID(),
		Span: Span{
			Start:  affected,
			Length: note.Snapshot.Len() - affected,
		},
		Metadata: newMetadata(source),
	}

	c.publish(event)
	return nil
}

// publish delivers the event synchronously, in subscription order.
func (c *Coordinator) publish(event TokensChangedEvent) {
	c.published++
	for _, e := range c.listeners {
		e.listener(event)
	}
}

// affectedStart returns the minimal start offset across all edits: the
// earliest point at which tokens may differ. With no edit detail the whole
// buffer is assumed affected.
func affectedStart(edits []buffer.EditSpan) buffer.ByteOffset {
	if len(edits) == 0 {
		return 0
	}
	min := edits[0].OldPos
	for _, e := range edits {
		if e.OldPos < min {
			min = e.OldPos
		}
		if e.NewPos < min {
			min = e.NewPos
		}
	}
	return min
}

// Stats reports coordinator activity for diagnostics.
type Stats struct {
	Published    uint64
	StaleDropped uint64
	Listeners    int
}

// Stats returns a snapshot of the coordinator's counters.
func (c *Coordinator) Stats() Stats {
	return Stats{
		Published:    c.published,
		StaleDropped: c.staleDropped,
		Listeners:    len(c.listeners),
	}
}
