package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/savi279/clothing-api/models"
)

func waitForSubscribers(t *testing.T, feed *Feed, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for feed.subscribers() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d subscribers, have %d", want, feed.subscribers())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestFeedPublishesOrders(t *testing.T) {
	feed := NewFeed()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders/live", func(c *gin.Context) {
		feed.Serve(c.Writer, c.Request)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/orders/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	waitForSubscribers(t, feed, 1)

	feed.Publish(models.Order{ID: 42, UserID: 7, TotalPrice: 112.8})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	var got models.Order
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal broadcast: %v", err)
	}
	if got.ID != 42 || got.TotalPrice != 112.8 {
		t.Fatalf("unexpected broadcast payload: %+v", got)
	}
}

func TestFeedDropsClosedClients(t *testing.T) {
	feed := NewFeed()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders/live", func(c *gin.Context) {
		feed.Serve(c.Writer, c.Request)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/orders/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	waitForSubscribers(t, feed, 1)
	conn.Close()
	waitForSubscribers(t, feed, 0)

	// Publishing with nobody listening is a no-op.
	feed.Publish(models.Order{ID: 1})
}
