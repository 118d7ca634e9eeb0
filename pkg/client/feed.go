package client

import (
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// FeedSubscription — открытая подписка на фид изменений.
// Close безопасно вызывать сколько угодно раз
type FeedSubscription struct {
	conn *websocket.Conn
	once sync.Once
}

func (s *FeedSubscription) Close() error {
	var err error
	s.once.Do(func() {
		s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		err = s.conn.Close()
	})
	return err
}

// SubscribeFeed открывает websocket на фид posts и зовёт onEvent
// на каждое событие изменения. Служебные ping'и не пробрасываются
func (c *Client) SubscribeFeed(onEvent func(FeedEvent)) (*FeedSubscription, error) {
	wsURL, err := c.feedURL()
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, err
	}

	sub := &FeedSubscription{conn: conn}

	go func() {
		defer conn.Close()
		for {
			var event FeedEvent
			if err := conn.ReadJSON(&event); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("Feed subscription closed: %v", err)
				}
				return
			}

			if event.Type == FeedPing {
				continue
			}

			onEvent(event)
		}
	}()

	return sub, nil
}

func (c *Client) feedURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/api/v1/feed"
	if token := c.Token(); token != "" {
		q := u.Query()
		q.Set("token", token)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
