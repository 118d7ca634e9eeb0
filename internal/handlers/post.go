package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nourbaganne/Esport-post-board/internal/catalog"
	"github.com/Nourbaganne/Esport-post-board/internal/changefeed"
	"github.com/Nourbaganne/Esport-post-board/internal/database"
	"github.com/Nourbaganne/Esport-post-board/internal/handlers/dto"
	"github.com/Nourbaganne/Esport-post-board/internal/middleware"
	"github.com/Nourbaganne/Esport-post-board/internal/models"
)

// PostStore — хранилище объявлений (см. database.Database)
type PostStore interface {
	ListPosts() ([]models.Post, error)
	SavePost(post *models.Post) error
	GetPost(id string) (*models.Post, error)
	DeletePost(id string, userID uuid.UUID) error
}

// FeedPublisher доставляет события фида (см. changefeed.Publisher)
type FeedPublisher interface {
	Publish(ctx context.Context, event changefeed.Event) error
}

type PostHandler struct {
	store PostStore
	feed  FeedPublisher
}

func NewPostHandler(store PostStore, feed FeedPublisher) *PostHandler {
	return &PostHandler{store: store, feed: feed}
}

// ListPosts отдаёт все объявления, новые первыми, с username автора
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.store.ListPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost создаёт объявление от имени текущего пользователя
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Сверяем поля со справочниками
	if !catalog.IsValidGame(req.Game) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown game"})
		return
	}
	if !catalog.IsValidRegion(req.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}
	if !catalog.IsValidRole(req.Game, req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is not valid for this game"})
		return
	}
	if req.Rank != "" && !catalog.IsValidRank(req.Game, req.Rank) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rank is not valid for this game"})
		return
	}

	post := &models.Post{
		UserID:      userID,
		Game:        req.Game,
		Role:        req.Role,
		Region:      req.Region,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if req.Rank != "" {
		post.Rank = &req.Rank
	}

	if err := h.store.SavePost(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	// Подгружаем профиль автора для события и ответа
	fullPost, err := h.store.GetPost(post.ID.String())
	if err != nil {
		fullPost = post
	}

	h.publish(changefeed.NewInsertEvent(fullPost))

	c.JSON(http.StatusCreated, fullPost)
}

// DeletePost удаляет объявление; чужие объявления удалять нельзя
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.store.DeletePost(postID.String(), userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, database.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only delete your own posts"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		}
		return
	}

	h.publish(changefeed.NewDeleteEvent(postID))

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// publish: недоставленное событие фида не фатально, клиенты
// синхронизируются следующей полной загрузкой
func (h *PostHandler) publish(event changefeed.Event) {
	if err := h.feed.Publish(context.Background(), event); err != nil {
		log.Printf("Failed to publish feed event: %v", err)
	}
}
