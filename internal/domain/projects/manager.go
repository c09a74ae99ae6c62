package projects

import (
	"context"

	"github.com/montazhpro/smeta/internal/domain/collection"
	"github.com/montazhpro/smeta/internal/store"
)

type Input struct {
	Title         string
	Description   string
	Status        Status
	StartDate     *string
	EndDate       *string
	Budget        *float64
	LegalEntityID *string
}

type Patch struct {
	Title         *string
	Description   *string
	Status        *Status
	StartDate     **string
	EndDate       **string
	Budget        **float64
	LegalEntityID **string
}

func (p Patch) apply(pr *Project) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.StartDate != nil {
		pr.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		pr.EndDate = *p.EndDate
	}
	if p.Budget != nil {
		pr.Budget = *p.Budget
	}
	if p.LegalEntityID != nil {
		pr.LegalEntityID = *p.LegalEntityID
	}
}

type Manager struct {
	col *collection.Collection[Project]
}

func NewManager(s store.Store) *Manager {
	return &Manager{col: collection.New[Project](s, "projects", "project")}
}

func (m *Manager) List(ctx context.Context) ([]Project, error) {
	return m.col.Load(ctx)
}

func (m *Manager) Create(ctx context.Context, in Input) (*Project, error) {
	var pr Project
	_, err := m.col.Mutate(ctx, func(items []Project) ([]Project, bool) {
		pr = Project{
			ID:            m.col.NewID(),
			Title:         in.Title,
			Description:   in.Description,
			Status:        in.Status,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			Budget:        in.Budget,
			LegalEntityID: in.LegalEntityID,
			CreatedAt:     m.col.NowMillis(),
		}
		return append(items, pr), true
	})
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (m *Manager) Update(ctx context.Context, id string, p Patch) (bool, error) {
	return m.col.Mutate(ctx, func(items []Project) ([]Project, bool) {
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
	return m.col.Mutate(ctx, func(items []Project) ([]Project, bool) {
		out := items[:0]
		for _, pr := range items {
			if pr.ID != id {
				out = append(out, pr)
			}
		}
		if len(out) == len(items) {
			return items, false
		}
		return out, true
	})
}

func (m *Manager) GetByID(ctx context.Context, id string) (*Project, error) {
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
