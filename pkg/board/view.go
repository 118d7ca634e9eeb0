package board

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Nourbaganne/Esport-post-board/pkg/client"
)

// Lister отдаёт полный список объявлений с сервера
type Lister interface {
	ListPosts(ctx context.Context) ([]client.Post, error)
}

// Remover удаляет объявление на сервере
type Remover interface {
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// Subscription — открытая подписка на фид (см. client.FeedSubscription)
type Subscription interface {
	Close() error
}

// View — состояние страницы со списком объявлений. Источник истины —
// сервер: Refresh всегда замещает список целиком, любое событие фида
// вызывает полную перезагрузку. Производный список — всегда чистая
// функция от (all, filter)
type View struct {
	mu sync.Mutex

	lister  Lister
	remover Remover

	all     []client.Post
	filter  Filter
	derived []client.Post
	loading bool

	currentUserID *uuid.UUID

	// Монотонные номера refresh'ей: ответ, начатый раньше уже
	// применённого, отбрасывается
	seq     uint64
	applied uint64

	sub       Subscription
	closeOnce sync.Once
}

func NewView(lister Lister, remover Remover) *View {
	return &View{
		lister:  lister,
		remover: remover,
		loading: true,
	}
}

// Refresh перечитывает список с сервера и замещает его целиком.
// При ошибке прежний список остаётся как был; loading снимается
// в любом исходе
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	my := v.seq
	v.mu.Unlock()

	posts, err := v.lister.ListPosts(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.loading = false

	if err != nil {
		return err
	}

	if my < v.applied {
		// Уже применён более свежий ответ
		return nil
	}
	v.applied = my

	v.all = posts
	v.derive()
	return nil
}

// HandleFeedEvent: любое изменение коллекции — полная перезагрузка.
// Дельты из события намеренно не применяются
func (v *View) HandleFeedEvent(ctx context.Context) error {
	return v.Refresh(ctx)
}

// AttachFeed запоминает подписку для teardown
func (v *View) AttachFeed(sub Subscription) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sub = sub
}

// Close снимает подписку на фид, ровно один раз
func (v *View) Close() {
	v.closeOnce.Do(func() {
		v.mu.Lock()
		sub := v.sub
		v.mu.Unlock()
		if sub != nil {
			sub.Close()
		}
	})
}

// SetFilter замещает фильтр целиком и синхронно пересчитывает выдачу
func (v *View) SetFilter(f Filter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = f
	v.derive()
}

// ClearFilter сбрасывает все поля фильтра
func (v *View) ClearFilter() {
	v.SetFilter(Filter{})
}

func (v *View) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Posts возвращает отфильтрованный список в серверном порядке
func (v *View) Posts() []client.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]client.Post, len(v.derived))
	copy(out, v.derived)
	return out
}

// TotalCount — размер полного списка (счётчик "X of Y posts")
func (v *View) TotalCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.all)
}

func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// SetCurrentUser задаёт владельца сессии (nil — гость)
func (v *View) SetCurrentUser(id *uuid.UUID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.currentUserID = id
}

// IsOwn: принадлежит ли объявление текущему пользователю
func (v *View) IsOwn(p client.Post) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentUserID != nil && *v.currentUserID == p.UserID
}

// Remove удаляет объявление на сервере и только после подтверждения
// убирает его из локального списка
func (v *View) Remove(ctx context.Context, id uuid.UUID) error {
	if err := v.remover.DeletePost(ctx, id); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	kept := make([]client.Post, 0, len(v.all))
	for _, p := range v.all {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	v.all = kept
	v.derive()
	return nil
}

// derive пересчитывает выдачу; вызывается под v.mu
func (v *View) derive() {
	v.derived = Apply(v.all, v.filter)
}
