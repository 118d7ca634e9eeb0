package client

import (
	"context"
	"net/http"
)

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignUp регистрирует пользователя и открывает сессию
func (c *Client) SignUp(ctx context.Context, email, password, username string) (*User, error) {
	req := map[string]string{
		"email":    email,
		"password": password,
	}
	if username != "" {
		req["username"] = username
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp, false); err != nil {
		return nil, err
	}

	user := resp.User
	c.setSession(resp.Token, &user)
	return &user, nil
}

// SignIn открывает сессию по email и паролю
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	req := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, false); err != nil {
		return nil, err
	}

	user := resp.User
	c.setSession(resp.Token, &user)
	return &user, nil
}

// SignOut закрывает сессию. Локальная сессия сбрасывается в любом
// случае, даже если удалённый вызов не удался
func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, true)
	c.setSession("", nil)
	return err
}

// Me возвращает текущего пользователя и профиль с сервера
func (c *Client) Me(ctx context.Context) (*User, *Profile, error) {
	var resp struct {
		User    User    `json:"user"`
		Profile Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp, true); err != nil {
		return nil, nil, err
	}
	return &resp.User, &resp.Profile, nil
}
