package estimates

import (
	"context"

	"github.com/montazhpro/smeta/internal/domain/collection"
	"github.com/montazhpro/smeta/internal/domain/materials"
	"github.com/montazhpro/smeta/internal/domain/works"
	"github.com/montazhpro/smeta/internal/store"
)

// Префиксы идентификаторов. У строк работ префикс свой (ework_), чтобы не
// пересекаться со справочником работ; старые данные с work_ читаются как есть.
const (
	itemPrefix     = "item"
	itemWorkPrefix = "ework"
)

type Input struct {
	Number    string
	Name      string
	ProjectID *string
	Date      int64
	Items     []Item
}

type Patch struct {
	Number    *string
	Name      *string
	ProjectID **string
	Date      *int64
	Items     *[]Item
}

type ItemInput struct {
	Number       int
	MaterialID   *string
	MaterialName string
	Works        []ItemWork
	Notes        string
}

type ItemWorkInput struct {
	WorkID       *string
	WorkName     string
	UnitID       *string
	Quantity     float64
	PricePerUnit *float64
}

// Manager владеет коллекцией смет. Справочники материалов и работ читает,
// но никогда не пишет — только для разрешения имён и цен при сборке позиций.
type Manager struct {
	col       *collection.Collection[Estimate]
	works     *works.Manager
	materials *materials.Manager
}

func NewManager(s store.Store, worksRepo *works.Manager, materialsRepo *materials.Manager) *Manager {
	return &Manager{
		col:       collection.New[Estimate](s, "estimates", "estimate"),
		works:     worksRepo,
		materials: materialsRepo,
	}
}

func (m *Manager) List(ctx context.Context) ([]Estimate, error) {
	return m.col.Load(ctx)
}

func (m *Manager) GetByID(ctx context.Context, id string) (*Estimate, error) {
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

// Create считает общий итог по переданным позициям сам — итог от вызывающего
// кода не принимается.
func (m *Manager) Create(ctx context.Context, in Input) (*Estimate, error) {
	var e Estimate
	_, err := m.col.Mutate(ctx, func(list []Estimate) ([]Estimate, bool) {
		items := in.Items
		if items == nil {
			items = []Item{}
		}
		e = Estimate{
			ID:        m.col.NewID(),
			Number:    in.Number,
			Name:      in.Name,
			ProjectID: in.ProjectID,
			Date:      in.Date,
			Items:     items,
			TotalCost: itemsTotal(items),
			CreatedAt: m.col.NowMillis(),
		}
		return append(list, e), true
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update сливает частичное обновление. Если в патче пришли позиции,
// общий итог пересчитывается по ним заново.
func (m *Manager) Update(ctx context.Context, id string, p Patch) (bool, error) {
	return m.col.Mutate(ctx, func(list []Estimate) ([]Estimate, bool) {
		for i := range list {
			if list[i].ID != id {
				continue
			}
			e := &list[i]
			if p.Number != nil {
				e.Number = *p.Number
			}
			if p.Name != nil {
				e.Name = *p.Name
			}
			if p.ProjectID != nil {
				e.ProjectID = *p.ProjectID
			}
			if p.Date != nil {
				e.Date = *p.Date
			}
			if p.Items != nil {
				e.Items = *p.Items
				e.TotalCost = itemsTotal(e.Items)
			}
			return list, true
		}
		return list, false
	})
}

func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	return m.col.Mutate(ctx, func(list []Estimate) ([]Estimate, bool) {
		out := list[:0]
		for _, e := range list {
			if e.ID != id {
				out = append(out, e)
			}
		}
		if len(out) == len(list) {
			return list, false
		}
		return out, true
	})
}

// NewItem — чистый конструктор позиции: считает итог по работам и выдаёт id.
// Хранилище не трогает: позицию кладёт в смету вызывающий код через
// Create/Update.
func (m *Manager) NewItem(in ItemInput) Item {
	ws := in.Works
	if ws == nil {
		ws = []ItemWork{}
	}
	return Item{
		ID:           collection.ID(itemPrefix),
		Number:       in.Number,
		MaterialID:   in.MaterialID,
		MaterialName: in.MaterialName,
		Works:        ws,
		TotalCost:    worksTotal(ws),
		Notes:        in.Notes,
	}
}

// NewItemWork — чистый конструктор строки работы.
func (m *Manager) NewItemWork(in ItemWorkInput) ItemWork {
	return ItemWork{
		ID:           collection.ID(itemWorkPrefix),
		WorkID:       in.WorkID,
		WorkName:     in.WorkName,
		UnitID:       in.UnitID,
		Quantity:     in.Quantity,
		PricePerUnit: in.PricePerUnit,
		TotalCost:    workTotal(in.PricePerUnit, in.Quantity),
	}
}

// ItemWorkFromCatalog собирает строку работы по справочной записи: название,
// единица и цена захватываются на момент сборки. Висячая ссылка не ошибка —
// строка просто остаётся без захваченных полей.
func (m *Manager) ItemWorkFromCatalog(ctx context.Context, workID string, qty float64) (ItemWork, error) {
	in := ItemWorkInput{Quantity: qty}
	w, err := m.works.GetByID(ctx, workID)
	if err != nil {
		return ItemWork{}, err
	}
	if w != nil {
		in.WorkID = &w.ID
		in.WorkName = w.Name
		in.UnitID = w.UnitID
		in.PricePerUnit = w.PricePerUnit
	}
	return m.NewItemWork(in), nil
}

// ItemForMaterial собирает позицию по справочному материалу с захватом имени.
func (m *Manager) ItemForMaterial(ctx context.Context, materialID string, number int, ws []ItemWork, notes string) (Item, error) {
	in := ItemInput{Number: number, Works: ws, Notes: notes}
	mat, err := m.materials.GetByID(ctx, materialID)
	if err != nil {
		return Item{}, err
	}
	if mat != nil {
		in.MaterialID = &mat.ID
		in.MaterialName = mat.Name
	}
	return m.NewItem(in), nil
}
