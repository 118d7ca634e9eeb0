package changefeed

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisChannel — канал pub/sub, через который путь записи доставляет
// события фида всем экземплярам сервера
const RedisChannel = "changefeed:posts"

// Publisher отправляет события в redis; hub каждого экземпляра
// подхватит их через Bridge
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, RedisChannel, data).Err()
}

// Bridge переливает события из redis pub/sub в hub
type Bridge struct {
	rdb *redis.Client
	hub *Hub
}

func NewBridge(rdb *redis.Client, hub *Hub) *Bridge {
	return &Bridge{rdb: rdb, hub: hub}
}

// Run блокируется до отмены контекста
func (b *Bridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, RedisChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				log.Printf("Feed bridge: redis subscription closed")
				return
			}
			b.hub.BroadcastRaw([]byte(msg.Payload))
		}
	}
}
