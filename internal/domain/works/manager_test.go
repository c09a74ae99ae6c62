package works

import (
	"context"
	"strings"
	"testing"

	"github.com/montazhpro/smeta/internal/store"
)

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	price := 500.0
	w, err := m.Create(ctx, Input{Code: "W1", Name: "Прокладка кабеля", PricePerUnit: &price})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(w.ID, "work_") {
		t.Fatalf("id prefix: %q", w.ID)
	}

	got, _ := m.GetByID(ctx, w.ID)
	if got == nil || got.PricePerUnit == nil || *got.PricePerUnit != 500 {
		t.Fatalf("get: %#v", got)
	}

	name := "Прокладка кабеля в гофре"
	ok, err := m.Update(ctx, w.ID, Patch{Name: &name})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	got, _ = m.GetByID(ctx, w.ID)
	if got.Name != name || got.Code != "W1" {
		t.Fatalf("merge: %#v", got)
	}

	if ok, _ := m.Delete(ctx, w.ID); !ok {
		t.Fatal("delete failed")
	}
	if got, _ := m.GetByID(ctx, w.ID); got != nil {
		t.Fatalf("still present: %#v", got)
	}
}
