package works

import (
	"context"

	"github.com/montazhpro/smeta/internal/domain/collection"
	"github.com/montazhpro/smeta/internal/store"
)

type Input struct {
	Code         string
	Name         string
	UnitID       *string
	PricePerUnit *float64
	Description  string
}

type Patch struct {
	Code         *string
	Name         *string
	UnitID       **string
	PricePerUnit **float64
	Description  *string
}

func (p Patch) apply(w *Work) {
	if p.Code != nil {
		w.Code = *p.Code
	}
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.UnitID != nil {
		w.UnitID = *p.UnitID
	}
	if p.PricePerUnit != nil {
		w.PricePerUnit = *p.PricePerUnit
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
}

type Manager struct {
	col *collection.Collection[Work]
}

func NewManager(s store.Store) *Manager {
	return &Manager{col: collection.New[Work](s, "works", "work")}
}

func (m *Manager) List(ctx context.Context) ([]Work, error) {
	return m.col.Load(ctx)
}

func (m *Manager) Create(ctx context.Context, in Input) (*Work, error) {
	var w Work
	_, err := m.col.Mutate(ctx, func(items []Work) ([]Work, bool) {
		w = Work{
			ID:           m.col.NewID(),
			Code:         in.Code,
			Name:         in.Name,
			UnitID:       in.UnitID,
			PricePerUnit: in.PricePerUnit,
			Description:  in.Description,
			CreatedAt:    m.col.NowMillis(),
		}
		return append(items, w), true
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (m *Manager) Update(ctx context.Context, id string, p Patch) (bool, error) {
	return m.col.Mutate(ctx, func(items []Work) ([]Work, bool) {
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
	return m.col.Mutate(ctx, func(items []Work) ([]Work, bool) {
		out := items[:0]
		for _, w := range items {
			if w.ID != id {
				out = append(out, w)
			}
		}
		if len(out) == len(items) {
			return items, false
		}
		return out, true
	})
}

func (m *Manager) GetByID(ctx context.Context, id string) (*Work, error) {
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
