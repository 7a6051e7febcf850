package state

// Tags is a frozen label→value snapshot. Every map handed out by Tags() is a
// defensive copy; mutating it never affects the holder it came from.
type Tags map[string]string

// clone returns a detached copy of t, nil stays nil-equivalent empty.
func (t Tags) clone() Tags {
	out := make(Tags, len(t))
	for label, value := range t {
		out[label] = value
	}
	return out
}

// MetaHolder is the capability for owning and testing tags. A tag is a
// label/value string pair; a label-only tag carries the empty string as its
// value. Labels are unique per holder with last write wins.
//
// Empty-set conventions: ContainsAll over a holder with no tags is true
// (vacuous subset); ContainsAny over a holder with no tags is false (empty
// intersection).
type MetaHolder interface {
	// AddTag stores the label/value pair, replacing any previous value for
	// the label.
	AddTag(label, value string)
	// AddLabel stores the label with an empty value.
	AddLabel(label string)
	// Contains reports whether the label is present with any value.
	Contains(label string) bool
	// ContainsTag reports whether the exact label/value pair is present.
	ContainsTag(label, value string) bool
	// ContainsAny reports whether any exact pair of other is present here.
	ContainsAny(other MetaHolder) bool
	// ContainsAll reports whether every exact pair of other is present here.
	ContainsAll(other MetaHolder) bool
	// Tags returns a frozen snapshot of the holder's effective tags.
	Tags() Tags
}

func tagsContainAny(tags Tags, other MetaHolder) bool {
	if other == nil {
		return false
	}
	for label, value := range other.Tags() {
		if got, ok := tags[label]; ok && got == value {
			return true
		}
	}
	return false
}

func tagsContainAll(tags Tags, other MetaHolder) bool {
	if other == nil {
		return true
	}
	for label, value := range other.Tags() {
		if got, ok := tags[label]; !ok || got != value {
			return false
		}
	}
	return true
}

// Meta is a plain MetaHolder with no tree participation. It is the atomic
// carrier used to seed tags on containers, states and queries.
type Meta struct {
	tags Tags
}

// MetaOption configures tags at Meta construction.
type MetaOption func(*Meta)

// WithTag adds the label/value pair to the new holder.
func WithTag(label, value string) MetaOption {
	return func(m *Meta) {
		m.tags[label] = value
	}
}

// WithLabel adds the label with an empty value to the new holder.
func WithLabel(label string) MetaOption {
	return func(m *Meta) {
		m.tags[label] = ""
	}
}

// WithTagsOf copies every tag of other into the new holder.
func WithTagsOf(other MetaHolder) MetaOption {
	return func(m *Meta) {
		if other == nil {
			return
		}
		for label, value := range other.Tags() {
			m.tags[label] = value
		}
	}
}

// NewMeta builds a tag holder from the supplied options.
func NewMeta(opts ...MetaOption) *Meta {
	m := &Meta{tags: Tags{}}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// MetaOf returns a holder carrying the single label.
func MetaOf(label string) *Meta {
	return NewMeta(WithLabel(label))
}

// MetaOfTag returns a holder carrying the single label/value pair.
func MetaOfTag(label, value string) *Meta {
	return NewMeta(WithTag(label, value))
}

// CopyMeta returns a holder carrying the tags of other.
func CopyMeta(other MetaHolder) *Meta {
	return NewMeta(WithTagsOf(other))
}

// AddTag implements MetaHolder.
func (m *Meta) AddTag(label, value string) {
	m.tags[label] = value
}

// AddLabel implements MetaHolder.
func (m *Meta) AddLabel(label string) {
	m.tags[label] = ""
}

// Contains implements MetaHolder.
func (m *Meta) Contains(label string) bool {
	_, ok := m.tags[label]
	return ok
}

// ContainsTag implements MetaHolder.
func (m *Meta) ContainsTag(label, value string) bool {
	got, ok := m.tags[label]
	return ok && got == value
}

// ContainsAny implements MetaHolder.
func (m *Meta) ContainsAny(other MetaHolder) bool {
	return tagsContainAny(m.tags, other)
}

// ContainsAll implements MetaHolder.
func (m *Meta) ContainsAll(other MetaHolder) bool {
	return tagsContainAll(m.tags, other)
}

// Tags implements MetaHolder. The returned map is a detached copy.
func (m *Meta) Tags() Tags {
	return m.tags.clone()
}
