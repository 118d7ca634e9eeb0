package changefeed

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Subscriber — одно подключение к фиду. Отвязан от websocket-соединения,
// hub знает только про канал отправки.
type Subscriber struct {
	ID   uuid.UUID
	Send chan []byte
}

func NewSubscriber() *Subscriber {
	return &Subscriber{
		ID:   uuid.New(),
		Send: make(chan []byte, 256),
	}
}

// Hub рассылает события изменения коллекции posts всем подписчикам
type Hub struct {
	subscribers map[uuid.UUID]*Subscriber

	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan []byte

	mu sync.RWMutex

	// Контекст для graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		subscribers: make(map[uuid.UUID]*Subscriber),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan []byte),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Run запускает hub
func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case sub := <-h.register:
			h.addSubscriber(sub)

		case sub := <-h.unregister:
			h.removeSubscriber(sub)

		case data := <-h.broadcast:
			h.fanOut(data)

		case <-ticker.C:
			h.ping()
		}
	}
}

// Stop останавливает hub
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subscribers {
		close(sub.Send)
	}
	h.subscribers = make(map[uuid.UUID]*Subscriber)
}

// Register подписывает нового клиента
func (h *Hub) Register(sub *Subscriber) {
	select {
	case h.register <- sub:
	case <-h.ctx.Done():
	}
}

// Unregister снимает подписку клиента
func (h *Hub) Unregister(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.ctx.Done():
	}
}

// Broadcast рассылает событие всем подписчикам
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal feed event: %v", err)
		return
	}
	h.BroadcastRaw(data)
}

// BroadcastRaw рассылает уже сериализованное событие (путь из redis-моста)
func (h *Hub) BroadcastRaw(data []byte) {
	select {
	case h.broadcast <- data:
	case <-h.ctx.Done():
	}
}

func (h *Hub) addSubscriber(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[sub.ID] = sub
	log.Printf("Feed subscriber registered: %s", sub.ID)
}

func (h *Hub) removeSubscriber(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub.ID]; ok {
		delete(h.subscribers, sub.ID)
		close(sub.Send)
		log.Printf("Feed subscriber unregistered: %s", sub.ID)
	}
}

func (h *Hub) fanOut(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.Send <- data:
		default:
			log.Printf("Subscriber %s send channel full", sub.ID)
		}
	}
}

func (h *Hub) ping() {
	data, err := json.Marshal(Event{Type: TypePing, Timestamp: time.Now()})
	if err != nil {
		return
	}
	h.fanOut(data)
}

// SubscriberCount возвращает число активных подписчиков
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
