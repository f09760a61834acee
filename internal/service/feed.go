package service

import (
	"sync"

	"house_hunter/internal/models"
)

// Event types published on the listing feed.
const (
	EventListingCreated = "listing_created"
	EventListingUpdated = "listing_updated"
	EventListingDeleted = "listing_deleted"
)

// ListingEvent is one change announcement. Listing is nil for deletions.
type ListingEvent struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Listing *models.Listing `json:"listing,omitempty"`
}

// subscriber buffer; a subscriber that falls this far behind starts
// dropping events rather than blocking writers.
const feedBuffer = 16

// FeedHub fans listing events out to websocket subscribers.
type FeedHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan ListingEvent
}

func NewFeedHub() *FeedHub {
	return &FeedHub{subs: make(map[int]chan ListingEvent)}
}

var _ Feed = (*FeedHub)(nil)

// Subscribe registers a new subscriber and returns its channel plus a
// cancel func. Cancel is idempotent and closes the channel.
func (h *FeedHub) Subscribe() (<-chan ListingEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan ListingEvent, feedBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking; events
// to a full subscriber channel are dropped.
func (h *FeedHub) Publish(ev ListingEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
