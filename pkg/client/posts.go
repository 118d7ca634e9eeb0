package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// PostDraft — заполненная форма нового объявления
type PostDraft struct {
	Game        string `json:"game"`
	Role        string `json:"role"`
	Rank        string `json:"rank,omitempty"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

// ListPosts возвращает все объявления, новые первыми
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var resp struct {
		Posts []Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts", nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// CreatePost создаёт объявление от имени текущего пользователя
func (c *Client) CreatePost(ctx context.Context, draft PostDraft) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/api/v1/posts", draft, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost удаляет объявление текущего пользователя
func (c *Client) DeletePost(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/posts/"+id.String(), nil, nil, true)
}
