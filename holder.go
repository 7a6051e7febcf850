package state

import "errors"

// ErrImmutableState is returned by State.Clear: a state is a terminal value
// node, not a collection.
var ErrImmutableState = errors.New("state: cannot clear an immutable state")

// ContainerHolder is a MetaHolder participating in a parent/root tree with
// tag inheritance. Effective tags are always merge(parent tags, local tags)
// with local entries overriding inherited ones; the merge is recomputed on
// construction, on AddTag/AddLabel, on SetParent, and when a parent pushes
// UpdateTags after changing its own tags.
type ContainerHolder interface {
	MetaHolder

	// Parent returns the holder's parent, ok=false when detached.
	Parent() (ContainerHolder, bool)
	// Root returns the cached root of the holder's current chain, ok=false
	// when the holder is detached and has no tree of its own.
	Root() (ContainerHolder, bool)
	// SetParent attaches the holder under parent (nil detaches), re-deriving
	// the cached root from the parent and recomputing effective tags.
	SetParent(parent ContainerHolder)
	// UpdateTags recomputes effective tags from the current parent.
	UpdateTags()
	// HasChildren reports whether the holder contains nested containers.
	HasChildren() bool
	// Size returns the number of items held.
	Size() int
	// Clear removes all items; terminal holders return ErrImmutableState.
	Clear() error
}

// Item is a child entry of a Container: a *State or a nested *Container.
// The interface is sealed so query and eviction logic can distinguish the
// two variants exhaustively.
type Item interface {
	ContainerHolder
	isItem()
}

// stateItem is the type-erased view of *State[E] used for heterogeneous
// key matching inside a container.
type stateItem interface {
	Item
	keyInfo() KeyInfo
	resolvedAny() any
}

// holderCore carries the parent/root linkage and the local/effective tag
// maps shared by State and Container. The self pointer lets core operations
// dispatch UpdateTags through the outer type so containers can fan out.
type holderCore struct {
	self   ContainerHolder
	parent ContainerHolder
	root   ContainerHolder
	local  Tags
	tags   Tags
}

func (h *holderCore) init(self ContainerHolder, local Tags) {
	h.self = self
	h.local = local.clone()
	h.recomputeTags()
}

// recomputeTags rebuilds the effective view: inherited entries first, local
// entries override.
func (h *holderCore) recomputeTags() {
	merged := Tags{}
	if h.parent != nil {
		for label, value := range h.parent.Tags() {
			merged[label] = value
		}
	}
	for label, value := range h.local {
		merged[label] = value
	}
	h.tags = merged
}

// Parent implements ContainerHolder.
func (h *holderCore) Parent() (ContainerHolder, bool) {
	return h.parent, h.parent != nil
}

// Root implements ContainerHolder. Containers shadow this to report
// themselves as root when parentless with children.
func (h *holderCore) Root() (ContainerHolder, bool) {
	return h.root, h.root != nil
}

// SetParent implements ContainerHolder. The parent pointer moves before the
// tag recomputation so inheritance reads the new parent, and the root is
// copied from the parent's own cached root (falling back to the parent when
// it is top of its chain) so lookups stay O(1).
func (h *holderCore) SetParent(parent ContainerHolder) {
	h.parent = parent
	h.root = nil

	h.self.UpdateTags()

	if parent == nil {
		return
	}
	if root, ok := parent.Root(); ok {
		h.root = root
		return
	}
	h.root = parent
}

// AddTag implements MetaHolder, recomputing the effective view through the
// outer holder so containers propagate to their children.
func (h *holderCore) AddTag(label, value string) {
	h.local[label] = value
	h.self.UpdateTags()
}

// AddLabel implements MetaHolder.
func (h *holderCore) AddLabel(label string) {
	h.AddTag(label, "")
}

// Contains implements MetaHolder against the effective view.
func (h *holderCore) Contains(label string) bool {
	_, ok := h.tags[label]
	return ok
}

// ContainsTag implements MetaHolder against the effective view.
func (h *holderCore) ContainsTag(label, value string) bool {
	got, ok := h.tags[label]
	return ok && got == value
}

// ContainsAny implements MetaHolder.
func (h *holderCore) ContainsAny(other MetaHolder) bool {
	return tagsContainAny(h.tags, other)
}

// ContainsAll implements MetaHolder.
func (h *holderCore) ContainsAll(other MetaHolder) bool {
	return tagsContainAll(h.tags, other)
}

// Tags implements MetaHolder. The returned map is a detached copy of the
// effective (inherited + local) view.
func (h *holderCore) Tags() Tags {
	return h.tags.clone()
}

// LocalTags returns a detached copy of the holder's own tags, without
// inherited entries.
func (h *holderCore) LocalTags() Tags {
	return h.local.clone()
}
