package changefeed

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Время ожидания записи
	writeWait = 10 * time.Second

	// Время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Интервал отправки ping
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего сообщения: клиент фида ничего
	// содержательного не шлёт
	maxMessageSize = 512
)

// Conn связывает websocket-соединение с подписчиком hub'а
type Conn struct {
	sub  *Subscriber
	conn *websocket.Conn
	hub  *Hub
}

func NewConn(hub *Hub, ws *websocket.Conn) *Conn {
	return &Conn{
		sub:  NewSubscriber(),
		conn: ws,
		hub:  hub,
	}
}

// Serve регистрирует подписчика и запускает оба pump'а
func (c *Conn) Serve() {
	c.hub.Register(c.sub)
	go c.writePump()
	go c.readPump()
}

// readPump только поддерживает соединение живым: фид односторонний,
// входящие данные игнорируются
func (c *Conn) readPump() {
	defer func() {
		c.hub.Unregister(c.sub)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Feed connection error: %v", err)
			}
			break
		}
	}
}

// writePump отправляет события подписчику
func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.sub.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub закрыл канал
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			c.conn.WriteMessage(websocket.TextMessage, data)

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
