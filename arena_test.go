package render

import "testing"

func TestTransientArenaResetsToZero(t *testing.T) {
	a := NewTransientArena(ArenaConstant)
	off, wrapped := a.Alloc(64)
	if off != 0 || wrapped {
		t.Fatalf("first alloc: got offset=%d wrapped=%v, want 0/false", off, wrapped)
	}
	off2, _ := a.Alloc(64)
	if off2 != ConstantArenaAlign {
		t.Fatalf("second alloc offset = %d, want %d", off2, ConstantArenaAlign)
	}
	a.Reset()
	off3, wrapped3 := a.Alloc(64)
	if off3 != 0 || wrapped3 {
		t.Fatalf("post-reset alloc: got offset=%d wrapped=%v, want 0/false", off3, wrapped3)
	}
}

func TestTransientArenaWrapsOnOverflow(t *testing.T) {
	a := NewTransientArena(ArenaIndex)
	_, wrapped := a.Alloc(IndexArenaSize - 4)
	if wrapped {
		t.Fatalf("unexpected wrap filling the arena")
	}
	off, wrapped := a.Alloc(4096)
	if !wrapped || off != 0 {
		t.Fatalf("overflow alloc: got offset=%d wrapped=%v, want 0/true", off, wrapped)
	}
}

func TestHandleZeroValueIsInvalid(t *testing.T) {
	if InvalidHandle.Valid() {
		t.Fatal("zero-value Handle must be invalid")
	}
	h := NewHandle(3)
	if !h.Valid() || h.Index() != 3 {
		t.Fatalf("NewHandle(3) = %+v, want valid handle with index 3", h)
	}
}

func TestClearColorOrDefaultFallsBackWithoutCamera(t *testing.T) {
	got := ClearColorOrDefault(nil)
	if got != DefaultClearColor {
		t.Fatalf("ClearColorOrDefault(nil) = %v, want %v", got, DefaultClearColor)
	}
}

func TestSlotForFixedTable(t *testing.T) {
	cases := map[string]ConstantSlot{
		"ViewProjection":  SlotViewProjection,
		"World":           SlotWorld,
		"BaseColor":       SlotBaseColor,
		"MaterialParams":  SlotMaterialParams,
	}
	for name, want := range cases {
		got, ok := SlotFor(name)
		if !ok || got != want {
			t.Fatalf("SlotFor(%q) = (%v, %v), want (%v, true)", name, got, ok, want)
		}
	}
	if _, ok := SlotFor("Nonexistent"); ok {
		t.Fatal("SlotFor(\"Nonexistent\") should not be found")
	}
}
