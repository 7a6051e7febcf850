package state

import "github.com/goliatone/go-state/pkg/activity"

// Container is a branch tree node holding an ordered list of items (states
// and nested containers). The child list is the sole owning edge in the
// tree; parent and root pointers are plain back-references.
type Container struct {
	holderCore

	items []Item
	hooks activity.Hooks
}

type containerConfig struct {
	tags  Tags
	hooks activity.Hooks
}

// ContainerOption configures tags and hooks at Container construction.
type ContainerOption func(*containerConfig)

// ContainerWithTag adds the label/value pair to the new container's tags.
func ContainerWithTag(label, value string) ContainerOption {
	return func(cfg *containerConfig) {
		cfg.tags[label] = value
	}
}

// ContainerWithLabel adds the label with an empty value.
func ContainerWithLabel(label string) ContainerOption {
	return func(cfg *containerConfig) {
		cfg.tags[label] = ""
	}
}

// ContainerWithTagsOf copies the tags of other into the new container.
func ContainerWithTagsOf(other MetaHolder) ContainerOption {
	return func(cfg *containerConfig) {
		if other == nil {
			return
		}
		for label, value := range other.Tags() {
			cfg.tags[label] = value
		}
	}
}

// NewContainer builds a detached container from the supplied options.
func NewContainer(opts ...ContainerOption) *Container {
	cfg := containerConfig{tags: Tags{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	c := &Container{hooks: cfg.hooks}
	c.init(c, cfg.tags)
	return c
}

// ContainerOf builds a container carrying the single label.
func ContainerOf(label string) *Container {
	return NewContainer(ContainerWithLabel(label))
}

// ContainerOfTag builds a container carrying the single label/value pair.
func ContainerOfTag(label, value string) *Container {
	return NewContainer(ContainerWithTag(label, value))
}

// CopyContainer builds a container carrying the tags of other.
func CopyContainer(other MetaHolder) *Container {
	return NewContainer(ContainerWithTagsOf(other))
}

// Offer attaches s to c, first evicting any existing state child that holds
// the same key and whose effective tags are a superset of s's tags. Two
// states with the same key but disjoint tag sets coexist, so one slot can
// carry several tag-scoped instances. Returns s for chaining with Set.
func Offer[E any](c *Container, key Key[E], s *State[E]) *State[E] {
	if c == nil || s == nil {
		return s
	}
	info := key.Info()
	kept := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if st, ok := item.(stateItem); ok && item.ContainsAll(s) && st.keyInfo().Equal(info) {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept

	s.SetParent(c)
	c.items = append(c.items, s)

	c.emit(activity.BuildStateOfferedEvent(activity.EventInput{
		KeyID:    info.ID,
		Tags:     s.Tags(),
		NewValue: s.resolvedAny(),
	}))
	return s
}

// Get returns the resolved value (element or key default) of the first state
// child holding key; ok=false when no such child exists. A child whose key
// shares the identifier but differs in element type never matches.
func Get[E any](c *Container, key Key[E]) (E, bool) {
	var zero E
	if c == nil {
		return zero, false
	}
	info := key.Info()
	for _, item := range c.items {
		st, ok := item.(*State[E])
		if !ok || !st.keyInfo().Equal(info) {
			continue
		}
		return st.Get(), true
	}
	return zero, false
}

// QueryOneState returns the first state child matching query and key.
func QueryOneState[E any](c *Container, query Query, key Key[E]) (*State[E], bool) {
	if c == nil {
		return nil, false
	}
	info := key.Info()
	for _, item := range c.items {
		if !query.Test(item) {
			continue
		}
		st, ok := item.(*State[E])
		if !ok || !st.keyInfo().Equal(info) {
			continue
		}
		return st, true
	}
	return nil, false
}

// QueryManyStates returns every state child matching query and key, in
// insertion order.
func QueryManyStates[E any](c *Container, query Query, key Key[E]) []*State[E] {
	if c == nil {
		return nil
	}
	info := key.Info()
	var out []*State[E]
	for _, item := range c.items {
		if !query.Test(item) {
			continue
		}
		st, ok := item.(*State[E])
		if !ok || !st.keyInfo().Equal(info) {
			continue
		}
		out = append(out, st)
	}
	return out
}

// First returns the container's first item; ok=false when empty.
func (c *Container) First() (Item, bool) {
	if len(c.items) == 0 {
		return nil, false
	}
	return c.items[0], true
}

// QueryOne returns the first item matching query.
func (c *Container) QueryOne(query Query) (Item, bool) {
	for _, item := range c.items {
		if query.Test(item) {
			return item, true
		}
	}
	return nil, false
}

// QueryMany returns every item matching query, in insertion order.
func (c *Container) QueryMany(query Query) []Item {
	var out []Item
	for _, item := range c.items {
		if query.Test(item) {
			out = append(out, item)
		}
	}
	return out
}

// Items returns a copy of the child list in insertion order.
func (c *Container) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// AddTag implements MetaHolder; the effective-tag recomputation fans out to
// children through UpdateTags.
func (c *Container) AddTag(label, value string) {
	c.holderCore.AddTag(label, value)
	c.emit(activity.BuildTagsUpdatedEvent(activity.EventInput{
		Tags:     c.Tags(),
		Metadata: map[string]any{"label": label, "value": value},
	}))
}

// AddLabel implements MetaHolder.
func (c *Container) AddLabel(label string) {
	c.AddTag(label, "")
}

// Root implements ContainerHolder. A parentless container with items is the
// root of its own tree.
func (c *Container) Root() (ContainerHolder, bool) {
	if c.root != nil {
		return c.root, true
	}
	if c.parent == nil && len(c.items) > 0 {
		return c, true
	}
	return nil, false
}

// UpdateTags implements ContainerHolder: recompute the effective view, then
// push the update to every direct child so inherited tags stay fresh at all
// depths (nested containers re-propagate in turn).
func (c *Container) UpdateTags() {
	c.recomputeTags()
	for _, item := range c.items {
		item.UpdateTags()
	}
}

// HasChildren implements ContainerHolder: true only when a nested container
// is present, distinguishing sub-scopes from plain data.
func (c *Container) HasChildren() bool {
	for _, item := range c.items {
		if _, ok := item.(*Container); ok {
			return true
		}
	}
	return false
}

// Size implements ContainerHolder.
func (c *Container) Size() int {
	return len(c.items)
}

// Clear implements ContainerHolder: every child is detached before the list
// is emptied so no child retains a stale parent reference.
func (c *Container) Clear() error {
	size := len(c.items)
	for _, item := range c.items {
		item.SetParent(nil)
	}
	c.items = nil

	c.emit(activity.BuildContainerClearedEvent(activity.EventInput{
		Tags:     c.Tags(),
		Metadata: map[string]any{"size": size},
	}))
	return nil
}

func (c *Container) isItem() {}
