package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Nourbaganne/Esport-post-board/internal/changefeed"
)

// FeedHandler поднимает websocket-подписки на фид изменений posts
type FeedHandler struct {
	hub      *changefeed.Hub
	upgrader websocket.Upgrader
}

func NewFeedHandler(hub *changefeed.Hub) *FeedHandler {
	return &FeedHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: Проверить origin в prod
				return true
			},
		},
	}
}

// HandleFeed обрабатывает подключение к фиду
func (h *FeedHandler) HandleFeed(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	changefeed.NewConn(h.hub, conn).Serve()
}
