package state

// Query is a predicate over a holder's effective tags built from two sets:
// required tags that must all be present, and match tags of which at least
// one must be present. An empty required set is vacuously satisfied; an
// empty match set imposes no constraint. Queries are immutable once built.
type Query struct {
	match    Tags
	required Tags
}

// QueryOption configures tag sets at Query construction.
type QueryOption func(*Query)

// MatchLabel adds the label to the optional match set.
func MatchLabel(label string) QueryOption {
	return func(q *Query) {
		q.match[label] = ""
	}
}

// MatchTag adds the label/value pair to the optional match set.
func MatchTag(label, value string) QueryOption {
	return func(q *Query) {
		q.match[label] = value
	}
}

// MatchTagsOf copies the tags of other into the optional match set.
func MatchTagsOf(other MetaHolder) QueryOption {
	return func(q *Query) {
		if other == nil {
			return
		}
		for label, value := range other.Tags() {
			q.match[label] = value
		}
	}
}

// RequireLabel adds the label to the required set.
func RequireLabel(label string) QueryOption {
	return func(q *Query) {
		q.required[label] = ""
	}
}

// RequireTag adds the label/value pair to the required set.
func RequireTag(label, value string) QueryOption {
	return func(q *Query) {
		q.required[label] = value
	}
}

// RequireTagsOf copies the tags of other into the required set.
func RequireTagsOf(other MetaHolder) QueryOption {
	return func(q *Query) {
		if other == nil {
			return
		}
		for label, value := range other.Tags() {
			q.required[label] = value
		}
	}
}

// NewQuery builds a query from the supplied options.
func NewQuery(opts ...QueryOption) Query {
	q := Query{match: Tags{}, required: Tags{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&q)
		}
	}
	return q
}

// QueryLabel returns a query requiring the label.
func QueryLabel(label string) Query {
	return NewQuery(RequireLabel(label))
}

// QueryTag returns a query requiring the label/value pair.
func QueryTag(label, value string) Query {
	return NewQuery(RequireTag(label, value))
}

// QueryOf returns a query requiring every tag of other.
func QueryOf(other MetaHolder) Query {
	return NewQuery(RequireTagsOf(other))
}

// QueryAnyLabel returns a query matching the label optionally.
func QueryAnyLabel(label string) Query {
	return NewQuery(MatchLabel(label))
}

// QueryAnyTag returns a query matching the label/value pair optionally.
func QueryAnyTag(label, value string) Query {
	return NewQuery(MatchTag(label, value))
}

// QueryAnyOf returns a query matching any tag of other.
func QueryAnyOf(other MetaHolder) Query {
	return NewQuery(MatchTagsOf(other))
}

// Test reports whether holder's effective tags satisfy the query: every
// required pair is present AND, when the match set is non-empty, at least
// one match pair is present.
func (q Query) Test(holder MetaHolder) bool {
	if holder == nil {
		return len(q.required) == 0 && len(q.match) == 0
	}
	tags := holder.Tags()
	for label, value := range q.required {
		if got, ok := tags[label]; !ok || got != value {
			return false
		}
	}
	if len(q.match) == 0 {
		return true
	}
	for label, value := range q.match {
		if got, ok := tags[label]; ok && got == value {
			return true
		}
	}
	return false
}
