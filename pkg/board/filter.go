// Package board — клиентское состояние доски объявлений: список с
// синхронизацией через фид изменений, фильтр и формы. Без UI.
package board

import (
	"github.com/Nourbaganne/Esport-post-board/internal/catalog"
	"github.com/Nourbaganne/Esport-post-board/pkg/client"
)

// Filter — конъюнктивный предикат по объявлениям. Пустое поле — wildcard,
// заданное сравнивается с полем объявления точно, с учётом регистра
type Filter struct {
	Game   string
	Region string
	Rank   string
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f Filter) Matches(p client.Post) bool {
	if f.Game != "" && p.Game != f.Game {
		return false
	}
	if f.Region != "" && p.Region != f.Region {
		return false
	}
	if f.Rank != "" && (p.Rank == nil || *p.Rank != f.Rank) {
		return false
	}
	return true
}

// Apply сужает posts по фильтру, сохраняя порядок
func Apply(posts []client.Post, f Filter) []client.Post {
	filtered := make([]client.Post, 0, len(posts))
	for _, p := range posts {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// RankOptions — варианты ранга для панели фильтров с учётом выбранной игры
func (f Filter) RankOptions() []string {
	return catalog.RankOptions(f.Game)
}
