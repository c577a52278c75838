package kage

import (
	"strings"
	"testing"

	"github.com/goki/kage/component"
)

func storeWith(t *testing.T, entries map[string]string) *component.Store {
	t.Helper()
	store := component.New()
	for name, data := range entries {
		store.Set(name, data)
	}
	return store
}

func TestBuildStraightHorizontalStrokeGothic(t *testing.T) {
	store := storeWith(t, map[string]string{"a": "1:0:0:50:100:150:100"})
	b := New(store)
	set := b.Build("a", Gothic)
	if len(set.Array()) != 1 {
		t.Fatalf("got %d polygons, want 1", len(set.Array()))
	}
	if len(b.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", b.Diagnostics)
	}
}

func TestBuildMissingComponentProducesEmptySetAndDiagnostic(t *testing.T) {
	b := New(component.New())
	set := b.Build("nonexistent", Gothic)
	if len(set.Array()) != 0 {
		t.Fatalf("got %d polygons, want 0", len(set.Array()))
	}
	if len(b.Diagnostics) != 1 || b.Diagnostics[0].Kind != MissingComponent {
		t.Fatalf("got diagnostics %+v", b.Diagnostics)
	}
}

func TestBuildComponentReferenceIdentity(t *testing.T) {
	store := storeWith(t, map[string]string{"x": "1:0:0:0:0:200:200"})
	b := New(store)
	direct := b.Build("x", Gothic)

	store2 := storeWith(t, map[string]string{
		"x": "1:0:0:0:0:200:200",
		"y": "99:0:0:0:0:200:200:x:0:0",
	})
	b2 := New(store2)
	viaRef := b2.Build("y", Gothic)

	if len(direct.Array()) != len(viaRef.Array()) {
		t.Fatalf("got %d vs %d polygons", len(direct.Array()), len(viaRef.Array()))
	}
}

func TestBuildAllCoversEveryName(t *testing.T) {
	store := storeWith(t, map[string]string{
		"a": "1:0:0:10:10:100:10",
		"b": "1:0:0:10:10:10:100",
	})
	b := New(store)
	results := b.BuildAll([]string{"a", "b", "missing"}, Gothic)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if len(results["missing"].Array()) != 0 {
		t.Fatalf("expected empty set for missing name")
	}
}

func TestBuildRegionRotate180StaysInsideBox(t *testing.T) {
	store := storeWith(t, map[string]string{
		"r": "1:0:0:30:30:70:30$0:99:2:0:0:100:100",
	})
	b := New(store)
	set := b.Build("r", Gothic)
	if len(set.Array()) != 1 {
		t.Fatalf("got %d polygons, want 1", len(set.Array()))
	}
	for _, v := range set.Array()[0].Points() {
		if v.X < 0 || v.X > 100 || v.Y < 0 || v.Y > 100 {
			t.Fatalf("vertex %+v escaped the region box", v)
		}
	}
}

func TestBuildMingStyleRunsAdjusterWithoutPanicking(t *testing.T) {
	store := storeWith(t, map[string]string{
		"m": "1:0:0:50:50:50:150",
	})
	b := New(store)
	set := b.Build("m", Ming)
	if len(set.Array()) == 0 {
		t.Fatalf("expected at least one polygon")
	}
}

func TestDiagnosticKindString(t *testing.T) {
	if !strings.Contains(MissingComponent.String(), "missing") {
		t.Fatalf("got %q", MissingComponent.String())
	}
}
