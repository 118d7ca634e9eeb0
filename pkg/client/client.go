// Package client — Go SDK для API Esport-post-board. Один экземпляр
// Client на процесс: держит базовый URL, http-клиент и текущую сессию,
// компоненты получают его через узкие интерфейсы.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// User — текущая учётная запись с точки зрения клиента
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// APIError — ошибка удалённого вызова; Message показывается
// пользователю дословно
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client

	mu        sync.RWMutex
	token     string
	user      *User
	listeners map[int]func(*User)
	nextID    int
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		listeners: make(map[int]func(*User)),
	}
}

// CurrentUser возвращает пользователя текущей сессии или nil
func (c *Client) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Token возвращает токен текущей сессии ("" — не авторизован)
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnAuthChange регистрирует слушателя смены сессии и возвращает
// функцию отписки
func (c *Client) OnAuthChange(fn func(*User)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// setSession меняет сессию и уведомляет слушателей
func (c *Client) setSession(token string, user *User) {
	c.mu.Lock()
	c.token = token
	c.user = user
	fns := make([]func(*User), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}

// do выполняет запрос к API и декодирует ответ в out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = fmt.Sprintf("request failed: %s", resp.Status)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
