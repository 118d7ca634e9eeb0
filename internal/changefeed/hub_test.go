package changefeed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Nourbaganne/Esport-post-board/internal/models"
	"github.com/google/uuid"
)

// helper: получить одно событие из канала подписчика, не зависая
func recvEvent(t *testing.T, ch <-chan []byte, within time.Duration) Event {
	t.Helper()
	select {
	case data, ok := <-ch:
		if !ok {
			t.Fatalf("subscriber channel closed unexpectedly")
		}
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		return event
	case <-time.After(within):
		t.Fatalf("timed out waiting for feed event")
		return Event{}
	}
}

func recvClosed(t *testing.T, ch <-chan []byte, within time.Duration) {
	t.Helper()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected channel close, got data")
		}
	case <-time.After(within):
		t.Fatalf("timed out waiting for channel close")
	}
}

// waitSubscribers ждёт, пока hub зарегистрирует n подписчиков
func waitSubscribers(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for h.SubscriberCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("hub has %d subscribers, want %d", h.SubscriberCount(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHubBroadcastsToAllSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	first := NewSubscriber()
	second := NewSubscriber()
	hub.Register(first)
	hub.Register(second)
	waitSubscribers(t, hub, 2)

	post := &models.Post{ID: uuid.New(), Game: "Valorant", Region: "NA East"}
	hub.Broadcast(NewInsertEvent(post))

	for _, sub := range []*Subscriber{first, second} {
		event := recvEvent(t, sub.Send, time.Second)
		if event.Type != TypeInsert || event.Table != "posts" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if event.Post == nil || event.Post.ID != post.ID {
			t.Fatalf("insert event must carry the post")
		}
	}
}

func TestHubDeleteEventCarriesPostID(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	sub := NewSubscriber()
	hub.Register(sub)
	waitSubscribers(t, hub, 1)

	postID := uuid.New()
	hub.Broadcast(NewDeleteEvent(postID))

	event := recvEvent(t, sub.Send, time.Second)
	if event.Type != TypeDelete {
		t.Fatalf("event type = %s, want delete", event.Type)
	}
	if event.PostID == nil || *event.PostID != postID {
		t.Fatalf("delete event must carry the post id")
	}
	if event.Post != nil {
		t.Fatalf("delete event must not carry a payload row")
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	sub := NewSubscriber()
	hub.Register(sub)
	waitSubscribers(t, hub, 1)

	hub.Unregister(sub)
	recvClosed(t, sub.Send, time.Second)
	waitSubscribers(t, hub, 0)

	// Рассылка без подписчиков не должна ничего ломать
	hub.Broadcast(NewDeleteEvent(uuid.New()))
}

func TestBroadcastRawPassesPayloadThrough(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	sub := NewSubscriber()
	hub.Register(sub)
	waitSubscribers(t, hub, 1)

	// Путь из redis-моста: событие приходит уже сериализованным
	original := NewInsertEvent(&models.Post{ID: uuid.New(), Game: "CS2"})
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	hub.BroadcastRaw(data)

	event := recvEvent(t, sub.Send, time.Second)
	if event.Type != TypeInsert || event.Post == nil || event.Post.Game != "CS2" {
		t.Fatalf("raw payload mangled: %+v", event)
	}
}
