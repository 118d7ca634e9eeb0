package board

import (
	"context"
	"errors"

	"github.com/Nourbaganne/Esport-post-board/internal/catalog"
	"github.com/Nourbaganne/Esport-post-board/pkg/client"
)

// DescriptionLimit — предел длины описания, применяется на уровне ввода
const DescriptionLimit = 200

// Текст совпадает с уведомлением, показываемым пользователю
var ErrMissingFields = errors.New("Please fill in all required fields")

// Inserter создаёт объявление на сервере
type Inserter interface {
	CreatePost(ctx context.Context, draft client.PostDraft) (*client.Post, error)
}

// Composer — состояние формы нового объявления. Game, Role, Region и
// Description обязательны, Rank всегда опционален. При ошибке отправки
// введённое сохраняется для повторной попытки
type Composer struct {
	inserter Inserter

	Game        string
	Role        string
	Rank        string
	Region      string
	Description string
}

func NewComposer(inserter Inserter) *Composer {
	return &Composer{inserter: inserter}
}

// SetGame выбирает игру и сбрасывает роль и ранг: их наборы значений
// зависят от игры, выбор от прежней игры не должен пережить смену
func (c *Composer) SetGame(game string) {
	c.Game = game
	c.Role = ""
	c.Rank = ""
}

// SetDescription обрезает ввод до лимита
func (c *Composer) SetDescription(text string) {
	runes := []rune(text)
	if len(runes) > DescriptionLimit {
		runes = runes[:DescriptionLimit]
	}
	c.Description = string(runes)
}

// RoleOptions — роли для выбранной игры
func (c *Composer) RoleOptions() []string {
	if c.Game == "" {
		return nil
	}
	return catalog.RolesFor(c.Game)
}

// RankOptions — ранги для выбранной игры
func (c *Composer) RankOptions() []string {
	if c.Game == "" {
		return nil
	}
	return catalog.RanksFor(c.Game)
}

// Validate проверяет обязательные поля до какого-либо сетевого вызова
func (c *Composer) Validate() error {
	if c.Game == "" || c.Role == "" || c.Region == "" || c.Description == "" {
		return ErrMissingFields
	}
	return nil
}

// Submit отправляет объявление. Валидация падает — вызова к серверу нет;
// сервер отказал — форма остаётся заполненной
func (c *Composer) Submit(ctx context.Context) (*client.Post, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	draft := client.PostDraft{
		Game:        c.Game,
		Role:        c.Role,
		Rank:        c.Rank,
		Region:      c.Region,
		Description: c.Description,
	}

	return c.inserter.CreatePost(ctx, draft)
}
