package collection

import (
	"context"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/montazhpro/smeta/internal/store"
)

type rec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^estimate_\d+_[0-9a-z]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := ID("estimate")
		if !re.MatchString(id) {
			t.Fatalf("bad id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestLoadMissingKey(t *testing.T) {
	c := New[rec](store.NewMemory(), "works", "work")
	items, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("want empty slice, got %#v", items)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := New[rec](store.NewMemory(), "works", "work")

	in := []rec{{ID: "work_1_aaaaaaaaa", Name: "Прокладка кабеля"}}
	if err := c.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip: %#v != %#v", in, out)
	}
}

func TestLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	if err := s.Put(ctx, "works", []byte(`{not json`)); err != nil {
		t.Fatal(err)
	}
	c := New[rec](s, "works", "work")
	_, err := c.Load(ctx)
	if err == nil || !strings.Contains(err.Error(), `corrupt collection "works"`) {
		t.Fatalf("want corrupt collection error, got %v", err)
	}
}

func TestMutateNoSave(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	c := New[rec](s, "works", "work")
	if err := c.Save(ctx, []rec{{ID: "work_1_aaaaaaaaa"}}); err != nil {
		t.Fatal(err)
	}
	before, _, _ := s.Get(ctx, "works")

	ok, err := c.Mutate(ctx, func(items []rec) ([]rec, bool) {
		return nil, false // ничего не нашли — не пишем
	})
	if err != nil || ok {
		t.Fatalf("Mutate: ok=%v err=%v", ok, err)
	}
	after, _, _ := s.Get(ctx, "works")
	if string(before) != string(after) {
		t.Fatalf("store changed on no-save mutate")
	}
}
