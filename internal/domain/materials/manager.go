package materials

import (
	"context"

	"github.com/montazhpro/smeta/internal/domain/collection"
	"github.com/montazhpro/smeta/internal/store"
)

type Input struct {
	Type          Type
	Code          string
	ArticleNumber string
	Name          string
	Description   string
	UnitID        *string
	Price         *float64
	Manufacturer  string
	Notes         string
}

// Patch: одиночный указатель — "поменять значение", двойной — nullable-поле,
// где *nil означает "сбросить в null", а nil — "не трогать".
type Patch struct {
	Type          *Type
	Code          *string
	ArticleNumber *string
	Name          *string
	Description   *string
	UnitID        **string
	Price         **float64
	Manufacturer  *string
	Notes         *string
}

func (p Patch) apply(m *Material) {
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Code != nil {
		m.Code = *p.Code
	}
	if p.ArticleNumber != nil {
		m.ArticleNumber = *p.ArticleNumber
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.UnitID != nil {
		m.UnitID = *p.UnitID
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Manufacturer != nil {
		m.Manufacturer = *p.Manufacturer
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
}

type Manager struct {
	col *collection.Collection[Material]
}

func NewManager(s store.Store) *Manager {
	return &Manager{col: collection.New[Material](s, "materials", "material")}
}

func (m *Manager) List(ctx context.Context) ([]Material, error) {
	return m.col.Load(ctx)
}

func (m *Manager) ListByType(ctx context.Context, t Type) ([]Material, error) {
	items, err := m.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := []Material{}
	for _, it := range items {
		if it.Type == t {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *Manager) Create(ctx context.Context, in Input) (*Material, error) {
	var mat Material
	_, err := m.col.Mutate(ctx, func(items []Material) ([]Material, bool) {
		mat = Material{
			ID:            m.col.NewID(),
			Type:          in.Type,
			Code:          in.Code,
			ArticleNumber: in.ArticleNumber,
			Name:          in.Name,
			Description:   in.Description,
			UnitID:        in.UnitID,
			Price:         in.Price,
			Manufacturer:  in.Manufacturer,
			Notes:         in.Notes,
			CreatedAt:     m.col.NowMillis(),
		}
		return append(items, mat), true
	})
	if err != nil {
		return nil, err
	}
	return &mat, nil
}

func (m *Manager) Update(ctx context.Context, id string, p Patch) (bool, error) {
	return m.col.Mutate(ctx, func(items []Material) ([]Material, bool) {
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
	return m.col.Mutate(ctx, func(items []Material) ([]Material, bool) {
		out := items[:0]
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		if len(out) == len(items) {
			return items, false
		}
		return out, true
	})
}

func (m *Manager) GetByID(ctx context.Context, id string) (*Material, error) {
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
