package persons

import (
	"context"
	"strings"

	"github.com/montazhpro/smeta/internal/domain/collection"
	"github.com/montazhpro/smeta/internal/store"
)

type Input struct {
	FirstName  string
	LastName   string
	MiddleName string
	Position   string
	Phone      string
	Email      string
	Notes      string
}

type Patch struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	Position   *string
	Phone      *string
	Email      *string
	Notes      *string
}

func (p Patch) apply(pr *Person) {
	if p.FirstName != nil {
		pr.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		pr.LastName = *p.LastName
	}
	if p.MiddleName != nil {
		pr.MiddleName = *p.MiddleName
	}
	if p.Position != nil {
		pr.Position = *p.Position
	}
	if p.Phone != nil {
		pr.Phone = *p.Phone
	}
	if p.Email != nil {
		pr.Email = *p.Email
	}
	if p.Notes != nil {
		pr.Notes = *p.Notes
	}
}

type Manager struct {
	col *collection.Collection[Person]
}

func NewManager(s store.Store) *Manager {
	return &Manager{col: collection.New[Person](s, "persons", "person")}
}

func (m *Manager) List(ctx context.Context) ([]Person, error) {
	return m.col.Load(ctx)
}

func (m *Manager) Create(ctx context.Context, in Input) (*Person, error) {
	var pr Person
	_, err := m.col.Mutate(ctx, func(items []Person) ([]Person, bool) {
		pr = Person{
			ID:         m.col.NewID(),
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			MiddleName: in.MiddleName,
			Position:   in.Position,
			Phone:      in.Phone,
			Email:      in.Email,
			Notes:      in.Notes,
			CreatedAt:  m.col.NowMillis(),
		}
		return append(items, pr), true
	})
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (m *Manager) Update(ctx context.Context, id string, p Patch) (bool, error) {
	return m.col.Mutate(ctx, func(items []Person) ([]Person, bool) {
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
	return m.col.Mutate(ctx, func(items []Person) ([]Person, bool) {
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

func (m *Manager) GetByID(ctx context.Context, id string) (*Person, error) {
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

// FullName — "Фамилия Имя Отчество" для подстановки в документы.
func (m *Manager) FullName(ctx context.Context, id string) (string, error) {
	pr, err := m.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if pr == nil {
		return "Не указан", nil
	}
	return strings.TrimSpace(pr.LastName + " " + pr.FirstName + " " + pr.MiddleName), nil
}
