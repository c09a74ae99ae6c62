package units

import (
	"context"

	"github.com/montazhpro/smeta/internal/domain/collection"
	"github.com/montazhpro/smeta/internal/store"
)

type Input struct {
	Code     string
	Name     string
	FullName string
	Kind     Kind
}

type Patch struct {
	Code     *string
	Name     *string
	FullName *string
	Kind     *Kind
}

func (p Patch) apply(u *Unit) {
	if p.Code != nil {
		u.Code = *p.Code
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Kind != nil {
		u.Kind = *p.Kind
	}
}

type Manager struct {
	col *collection.Collection[Unit]
}

func NewManager(s store.Store) *Manager {
	return &Manager{col: collection.New[Unit](s, "units", "unit")}
}

func (m *Manager) List(ctx context.Context) ([]Unit, error) {
	return m.col.Load(ctx)
}

func (m *Manager) Create(ctx context.Context, in Input) (*Unit, error) {
	var u Unit
	_, err := m.col.Mutate(ctx, func(items []Unit) ([]Unit, bool) {
		u = Unit{
			ID:        m.col.NewID(),
			Code:      in.Code,
			Name:      in.Name,
			FullName:  in.FullName,
			Kind:      in.Kind,
			CreatedAt: m.col.NowMillis(),
		}
		return append(items, u), true
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Manager) Update(ctx context.Context, id string, p Patch) (bool, error) {
	return m.col.Mutate(ctx, func(items []Unit) ([]Unit, bool) {
		for i := range items {
			if items[i].ID == id {
				p.apply(&items[i])
				return items, true
			}
		}
		return items, false
	})
}

func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	return m.col.Mutate(ctx, func(items []Unit) ([]Unit, bool) {
		out := items[:0]
		for _, u := range items {
			if u.ID != id {
				out = append(out, u)
			}
		}
		if len(out) == len(items) {
			return items, false
		}
		return out, true
	})
}

// GetByID: пустой id означает "записи нет" — так удобно передавать
// необязательные внешние ключи напрямую.
func (m *Manager) GetByID(ctx context.Context, id string) (*Unit, error) {
	if id == "" {
		return nil, nil
	}
	items, err := m.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}
