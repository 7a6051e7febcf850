package state

// State is a terminal tree node wrapping one typed element, the key that
// identifies its slot, and the previous element for change tracking. The
// element is immutable once constructed: Set returns a new State and leaves
// the receiver untouched. Tags may still be added; they recompute the
// effective view like any other holder.
type State[E any] struct {
	holderCore

	key      Key[E]
	element  *E
	previous *E
}

type stateConfig[E any] struct {
	tags     Tags
	element  *E
	previous *E
}

// StateOption configures tags and elements at State construction.
type StateOption[E any] func(*stateConfig[E])

// WithElement sets the state's element.
func WithElement[E any](element E) StateOption[E] {
	return func(cfg *stateConfig[E]) {
		cfg.element = &element
	}
}

// WithPreviousElement sets the state's previous element.
func WithPreviousElement[E any](element E) StateOption[E] {
	return func(cfg *stateConfig[E]) {
		cfg.previous = &element
	}
}

// StateWithTag adds the label/value pair to the new state's local tags.
func StateWithTag[E any](label, value string) StateOption[E] {
	return func(cfg *stateConfig[E]) {
		cfg.tags[label] = value
	}
}

// StateWithLabel adds the label with an empty value.
func StateWithLabel[E any](label string) StateOption[E] {
	return func(cfg *stateConfig[E]) {
		cfg.tags[label] = ""
	}
}

// StateWithTagsOf copies the tags of other into the new state's local tags.
func StateWithTagsOf[E any](other MetaHolder) StateOption[E] {
	return func(cfg *stateConfig[E]) {
		if other == nil {
			return
		}
		for label, value := range other.Tags() {
			cfg.tags[label] = value
		}
	}
}

// NewState builds a detached state for key from the supplied options.
func NewState[E any](key Key[E], opts ...StateOption[E]) *State[E] {
	cfg := stateConfig[E]{tags: Tags{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	s := &State[E]{
		key:      key,
		element:  cfg.element,
		previous: cfg.previous,
	}
	s.init(s, cfg.tags)
	return s
}

// StateOf builds a detached state for key holding element.
func StateOf[E any](key Key[E], element E) *State[E] {
	return NewState(key, WithElement(element))
}

// Key returns the schema token identifying this state's slot.
func (s *State[E]) Key() Key[E] {
	return s.key
}

// Get returns the element when present, otherwise the key's default. From
// the caller's perspective a state always resolves to a value.
func (s *State[E]) Get() E {
	if s.element == nil {
		return s.key.Default()
	}
	return *s.element
}

// GetDirect returns the element without the default fallback.
func (s *State[E]) GetDirect() (E, bool) {
	if s.element == nil {
		var zero E
		return zero, false
	}
	return *s.element, true
}

// Default returns the key's default element.
func (s *State[E]) Default() E {
	return s.key.Default()
}

// Previous returns the element this state replaced; ok=false when the state
// holds its slot's first assignment.
func (s *State[E]) Previous() (E, bool) {
	if s.previous == nil {
		var zero E
		return zero, false
	}
	return *s.previous, true
}

// Set returns a new detached state carrying this state's effective tags and
// key, the supplied element, and this state's element as the previous value.
// The receiver is unchanged; callers re-offer the result into the owning
// container, which replaces the old state via the eviction rule.
func (s *State[E]) Set(element E) *State[E] {
	opts := []StateOption[E]{
		StateWithTagsOf[E](s),
		WithElement(element),
	}
	if s.element != nil {
		opts = append(opts, WithPreviousElement(*s.element))
	}
	return NewState(s.key, opts...)
}

// UpdateTags implements ContainerHolder; a state has nothing to propagate.
func (s *State[E]) UpdateTags() {
	s.recomputeTags()
}

// HasChildren implements ContainerHolder; a state is terminal.
func (s *State[E]) HasChildren() bool {
	return false
}

// Size implements ContainerHolder: 1 when an element is present, else 0.
func (s *State[E]) Size() int {
	if s.element == nil {
		return 0
	}
	return 1
}

// Clear implements ContainerHolder; states are not collections.
func (s *State[E]) Clear() error {
	return ErrImmutableState
}

func (s *State[E]) isItem() {}

func (s *State[E]) keyInfo() KeyInfo {
	return s.key.Info()
}

func (s *State[E]) resolvedAny() any {
	return s.Get()
}
