package projects

import (
	"context"
	"testing"

	"github.com/montazhpro/smeta/internal/store"
)

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	pr, err := m.Create(ctx, Input{Title: "СКС офис Ленина 10", Status: StatusActive})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	st := StatusCompleted
	ok, err := m.Update(ctx, pr.ID, Patch{Status: &st})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	got, _ := m.GetByID(ctx, pr.ID)
	if got.Status != StatusCompleted || got.Title != pr.Title {
		t.Fatalf("merge: %#v", got)
	}

	if ok, _ := m.Delete(ctx, "project_0_zzzzzzzzz"); ok {
		t.Fatal("delete of missing id must fail")
	}
	if ok, _ := m.Delete(ctx, pr.ID); !ok {
		t.Fatal("delete failed")
	}
}
