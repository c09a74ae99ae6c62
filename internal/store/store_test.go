package store

import (
	"bytes"
	"context"
	"testing"
)

func TestMemoryMissingKey(t *testing.T) {
	s := NewMemory()
	b, ok, err := s.Get(context.Background(), "estimates")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || b != nil {
		t.Fatalf("missing key: got ok=%v b=%q", ok, b)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	if err := s.Put(ctx, "units", []byte(`[{"id":"unit_1_a"}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	b, ok, err := s.Get(ctx, "units")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(b, []byte(`[{"id":"unit_1_a"}]`)) {
		t.Fatalf("value mismatch: %q", b)
	}

	// значение заменяется целиком
	if err := s.Put(ctx, "units", []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	b, _, _ = s.Get(ctx, "units")
	if string(b) != `[]` {
		t.Fatalf("overwrite: %q", b)
	}
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if _, ok, err := s.Get(ctx, "materials"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Put(ctx, "materials", []byte(`[{"id":"material_1_b"}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	b, ok, err := s.Get(ctx, "materials")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(b) != `[{"id":"material_1_b"}]` {
		t.Fatalf("value mismatch: %q", b)
	}

	// данные переживают пересоздание стора (перезапуск процесса)
	s2, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	b, ok, err = s2.Get(ctx, "materials")
	if err != nil || !ok || string(b) != `[{"id":"material_1_b"}]` {
		t.Fatalf("reopen: ok=%v err=%v b=%q", ok, err, b)
	}
}
