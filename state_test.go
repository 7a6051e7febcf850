package state

import (
	"errors"
	"testing"
)

func TestStateResolvesElementOrDefault(t *testing.T) {
	key := NewKey("health", "Health", 100)

	empty := NewState(key)
	if got := empty.Get(); got != 100 {
		t.Fatalf("expected default element, got %d", got)
	}
	if _, ok := empty.GetDirect(); ok {
		t.Fatalf("GetDirect must report no element")
	}
	if empty.Size() != 0 {
		t.Fatalf("expected size 0 without an element, got %d", empty.Size())
	}

	full := StateOf(key, 80)
	if got := full.Get(); got != 80 {
		t.Fatalf("expected explicit element, got %d", got)
	}
	if got, ok := full.GetDirect(); !ok || got != 80 {
		t.Fatalf("GetDirect = (%d, %v), want (80, true)", got, ok)
	}
	if full.Size() != 1 {
		t.Fatalf("expected size 1 with an element, got %d", full.Size())
	}
	if full.Default() != 100 {
		t.Fatalf("expected key default 100, got %d", full.Default())
	}
}

func TestStateSetReturnsNewInstance(t *testing.T) {
	key := NewKey("health", "Health", 100)
	first := NewState(key, WithElement(80), StateWithTag[int]("team", "red"))

	second := first.Set(55)
	if second == first {
		t.Fatalf("Set must return a new state")
	}
	if got := first.Get(); got != 80 {
		t.Fatalf("receiver must be unchanged, got %d", got)
	}
	if got := second.Get(); got != 55 {
		t.Fatalf("expected new element 55, got %d", got)
	}
	prev, ok := second.Previous()
	if !ok || prev != 80 {
		t.Fatalf("Previous = (%d, %v), want (80, true)", prev, ok)
	}
	if !second.ContainsTag("team", "red") {
		t.Fatalf("Set must carry the receiver's tags, got %v", second.Tags())
	}
	if _, ok := second.Parent(); ok {
		t.Fatalf("Set must return a detached state")
	}
}

func TestStateSetWithoutElementHasNoPrevious(t *testing.T) {
	key := NewKey("health", "Health", 100)
	next := NewState(key).Set(42)

	if _, ok := next.Previous(); ok {
		t.Fatalf("replacing an empty slot must not record a previous element")
	}
	if got := next.Get(); got != 42 {
		t.Fatalf("expected element 42, got %d", got)
	}
}

func TestStateFirstAssignmentHasNoPrevious(t *testing.T) {
	key := NewKey("health", "Health", 100)
	s := StateOf(key, 80)
	if _, ok := s.Previous(); ok {
		t.Fatalf("first assignment must report no previous element")
	}
}

func TestStateIsTerminal(t *testing.T) {
	key := NewKey("health", "Health", 100)
	s := StateOf(key, 80)

	if s.HasChildren() {
		t.Fatalf("a state never has children")
	}
	if err := s.Clear(); !errors.Is(err, ErrImmutableState) {
		t.Fatalf("Clear = %v, want ErrImmutableState", err)
	}
}

func TestStateInheritsContainerTags(t *testing.T) {
	key := NewKey("health", "Health", 100)
	c := ContainerOfTag("team", "red")
	s := NewState(key, WithElement(80), StateWithTag[int]("slot", "primary"))

	s.SetParent(c)
	if !s.ContainsTag("team", "red") || !s.ContainsTag("slot", "primary") {
		t.Fatalf("expected merged tags, got %v", s.Tags())
	}

	s.SetParent(nil)
	if s.Contains("team") {
		t.Fatalf("detaching must drop inherited tags, got %v", s.Tags())
	}
	if !s.ContainsTag("slot", "primary") {
		t.Fatalf("detaching must keep local tags, got %v", s.Tags())
	}
}
