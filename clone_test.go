package state

import (
	"reflect"
	"testing"
)

func TestCloneDetachesNestedMaps(t *testing.T) {
	src := map[string]any{
		"tags":  map[string]any{"team": "red"},
		"score": 10,
	}
	dst := Clone(src)

	dst["tags"].(map[string]any)["team"] = "blue"
	if src["tags"].(map[string]any)["team"] != "red" {
		t.Fatalf("clone must not share nested maps with the source")
	}
	if !reflect.DeepEqual(Clone(src), src) {
		t.Fatalf("clone must be structurally equal to the source")
	}
}

func TestCloneDetachesSlicesAndPointers(t *testing.T) {
	type loadout struct {
		Weapons []string
		Ammo    *int
	}
	ammo := 30
	src := loadout{Weapons: []string{"sword"}, Ammo: &ammo}

	dst := Clone(src)
	dst.Weapons[0] = "bow"
	*dst.Ammo = 12

	if src.Weapons[0] != "sword" {
		t.Fatalf("clone must not share slice backing arrays")
	}
	if ammo != 30 {
		t.Fatalf("clone must not share pointer targets")
	}
}

func TestCloneHandlesNilAndScalars(t *testing.T) {
	if got := cloneAny(nil); got != nil {
		t.Fatalf("expected nil clone, got %v", got)
	}
	if got := Clone(42); got != 42 {
		t.Fatalf("expected scalar passthrough, got %v", got)
	}
	var m map[string]int
	if got := Clone(m); got != nil {
		t.Fatalf("expected nil map to stay nil, got %v", got)
	}
	var s []int
	if got := Clone(s); got != nil {
		t.Fatalf("expected nil slice to stay nil, got %v", got)
	}
}

func TestCloneSkipsUnexportedFields(t *testing.T) {
	type holder struct {
		Visible string
		hidden  string
	}
	src := holder{Visible: "yes", hidden: "no"}
	dst := Clone(src)

	if dst.Visible != "yes" {
		t.Fatalf("exported fields must be copied, got %+v", dst)
	}
	if dst.hidden != "" {
		t.Fatalf("unexported fields stay zero, got %+v", dst)
	}
}
