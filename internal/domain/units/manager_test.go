package units

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/montazhpro/smeta/internal/store"
)

func TestCreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	u, err := m.Create(ctx, Input{Code: "м", Name: "метр", FullName: "метр погонный", Kind: KindLength})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(u.ID, "unit_") {
		t.Fatalf("id prefix: %q", u.ID)
	}
	if u.CreatedAt == 0 {
		t.Fatal("createdAt not set")
	}

	got, err := m.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || !reflect.DeepEqual(*got, *u) {
		t.Fatalf("round trip: %#v != %#v", got, u)
	}
}

func TestGetByIDEmptyShortcut(t *testing.T) {
	m := NewManager(store.NewMemory())
	got, err := m.GetByID(context.Background(), "")
	if err != nil || got != nil {
		t.Fatalf("empty id: got=%v err=%v", got, err)
	}
}

func TestListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	for _, code := range []string{"шт", "кг", "м2"} {
		if _, err := m.Create(ctx, Input{Code: code, Kind: KindOther}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := m.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].Code != "шт" || list[2].Code != "м2" {
		t.Fatalf("order: %#v", list)
	}
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())
	u, _ := m.Create(ctx, Input{Code: "kg", Name: "килограмм", Kind: KindWeight})

	name := "кг"
	ok, err := m.Update(ctx, u.ID, Patch{Name: &name})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	got, _ := m.GetByID(ctx, u.ID)
	if got.Name != "кг" || got.Code != "kg" || got.Kind != KindWeight {
		t.Fatalf("partial merge: %#v", got)
	}
}

func TestUpdateMissing(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())
	name := "x"
	ok, err := m.Update(ctx, "unit_0_zzzzzzzzz", Patch{Name: &name})
	if err != nil || ok {
		t.Fatalf("missing update: ok=%v err=%v", ok, err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())
	u, _ := m.Create(ctx, Input{Code: "ч", Kind: KindTime})

	ok, err := m.Delete(ctx, u.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if got, _ := m.GetByID(ctx, u.ID); got != nil {
		t.Fatalf("still present: %#v", got)
	}
	ok, err = m.Delete(ctx, u.ID)
	if err != nil || ok {
		t.Fatalf("second delete: ok=%v err=%v", ok, err)
	}
}
