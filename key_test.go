package state

import (
	"reflect"
	"testing"
)

func TestNewKeyCapturesElementType(t *testing.T) {
	intKey := NewKey("health", "Health", 100)
	if intKey.ElementType() != reflect.TypeOf(0) {
		t.Fatalf("expected int element type, got %v", intKey.ElementType())
	}

	type loadout struct{ Weapon string }
	structKey := NewKey("loadout", "Loadout", loadout{})
	if structKey.ElementType() != reflect.TypeOf(loadout{}) {
		t.Fatalf("expected struct element type, got %v", structKey.ElementType())
	}

	// Pointer element types keep their static type even for nil defaults.
	ptrKey := NewKey[*loadout]("loadout-ptr", "Loadout", nil)
	if ptrKey.ElementType() != reflect.TypeOf(&loadout{}) {
		t.Fatalf("expected pointer element type, got %v", ptrKey.ElementType())
	}
}

func TestKeyEquality(t *testing.T) {
	a := NewKey("health", "Health", 100)

	cases := []struct {
		name  string
		other Key[int]
		want  bool
	}{
		{"identical", NewKey("health", "Health", 100), true},
		{"different id", NewKey("hp", "Health", 100), false},
		{"different name", NewKey("health", "HP", 100), false},
		{"different default", NewKey("health", "Health", 50), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Equal(tc.other); got != tc.want {
				t.Fatalf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKeyInfoDistinguishesElementTypes(t *testing.T) {
	intKey := NewKey("score", "Score", 0)
	strKey := NewKey("score", "Score", "")

	if intKey.Info().Equal(strKey.Info()) {
		t.Fatalf("keys sharing an id but differing in element type must not be equal")
	}
}

func TestKeyDefault(t *testing.T) {
	key := NewKey("health", "Health", 100)
	if key.Default() != 100 {
		t.Fatalf("expected default 100, got %d", key.Default())
	}
	if key.ID() != "health" || key.Name() != "Health" {
		t.Fatalf("unexpected identity: id=%q name=%q", key.ID(), key.Name())
	}
}
