package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"house_hunter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestWebSocket_FeedStreamsListingEvents(t *testing.T) {
	feed := service.NewFeedHub()
	s := &service.Service{Feed: feed}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	// The subscription is registered during the upgrade handler; give the
	// server loop a moment before publishing.
	deadline := time.Now().Add(2 * time.Second)
	published := false
	var ev service.ListingEvent
	for time.Now().Before(deadline) {
		if !published {
			feed.Publish(service.ListingEvent{Type: service.EventListingCreated, ID: "id-a"})
			published = true
		}
		_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		if err := conn.ReadJSON(&ev); err == nil {
			break
		}
		// subscriber may not have been registered yet; retry
		published = false
	}

	if ev.Type != service.EventListingCreated || ev.ID != "id-a" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestWebSocket_ClientDisconnectReleasesSubscription(t *testing.T) {
	feed := service.NewFeedHub()
	s := &service.Service{Feed: feed}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	_ = conn.Close()

	// After the close is processed, publishing must not block even though
	// the subscriber is gone.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			feed.Publish(service.ListingEvent{Type: service.EventListingDeleted, ID: "id-a"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked after client disconnect")
	}
}
