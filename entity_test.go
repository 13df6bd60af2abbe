package stockpile

import "testing"

func TestEntityViewContents(t *testing.T) {
	storage := Factory.NewStorage()
	id, _ := storage.NewEntity(map[string]Component{
		"position": {"x": Float(1), "y": Float(2)},
		"health":   {"current": Int(10), "max": Int(10)},
	})
	storage.NewEntity(map[string]Component{"velocity": {"x": Float(0)}})

	view := storage.Entity(id)
	if view.Len() != 2 {
		t.Fatalf("view.Len() = %d, want 2", view.Len())
	}

	pos, ok := view.Component("position")
	if !ok {
		t.Fatal("view missing position component")
	}
	if pos["x"] != Float(1) || pos["y"] != Float(2) {
		t.Errorf("position = %v, want x=Float(1) y=Float(2)", pos)
	}

	if _, ok := view.Component("velocity"); ok {
		t.Error("view includes a component attached to a different entity")
	}

	seen := map[string]bool{}
	for name, c := range view.Components() {
		seen[name] = true
		if c == nil {
			t.Errorf("component %q is nil in iteration", name)
		}
	}
	if !seen["position"] || !seen["health"] || len(seen) != 2 {
		t.Errorf("iterated components = %v, want position and health", seen)
	}
}

func TestEntityViewIsSnapshot(t *testing.T) {
	storage := Factory.NewStorage()
	id, _ := storage.NewEntity(map[string]Component{"position": {"x": Float(0)}})

	view := storage.Entity(id)
	storage.UpdateField(id, "position", "x", Float(7))

	// Views are reconstructed, not live
	if v, _ := view.Field("position", "x"); v != Float(0) {
		t.Errorf("stale view field = %v, want Float(0)", v)
	}
	fresh := storage.Entity(id)
	if v, _ := fresh.Field("position", "x"); v != Float(7) {
		t.Errorf("fresh view field = %v, want Float(7)", v)
	}
}

func TestEntityFieldHelper(t *testing.T) {
	storage := Factory.NewStorage()
	id, _ := storage.NewEntity(map[string]Component{"position": {"x": Float(1.5)}})

	view := storage.Entity(id)
	if v, ok := view.Field("position", "x"); !ok || v != Float(1.5) {
		t.Errorf("Field() = %v, %v, want Float(1.5), true", v, ok)
	}
	if _, ok := view.Field("position", "missing"); ok {
		t.Error("Field() found an unset field")
	}
	if _, ok := view.Field("missing", "x"); ok {
		t.Error("Field() found a field on a missing component")
	}

	x := FieldAccessor{Component: "position", Field: "x"}
	if v, ok := x.GetFromEntity(view); !ok || v != Float(1.5) {
		t.Errorf("GetFromEntity() = %v, %v, want Float(1.5), true", v, ok)
	}
}

func TestComponentClone(t *testing.T) {
	original := Component{"a": Int(1), "b": Float(2)}
	clone := original.Clone()

	clone["a"] = Int(99)
	clone["c"] = Int(3)

	if original["a"] != Int(1) {
		t.Errorf("original mutated through clone: a = %v", original["a"])
	}
	if len(original) != 2 {
		t.Errorf("original has %d fields after clone mutation, want 2", len(original))
	}

	var nilComponent Component
	if got := nilComponent.Clone(); got == nil || len(got) != 0 {
		t.Errorf("Clone() of nil component = %v, want empty non-nil", got)
	}
}
