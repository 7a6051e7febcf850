package state

import "testing"

func TestQueryTestSemantics(t *testing.T) {
	holder := NewMeta(WithTag("team", "red"), WithTag("zone", "a"), WithLabel("active"))

	cases := []struct {
		name  string
		query Query
		want  bool
	}{
		{"empty query matches everything", NewQuery(), true},
		{"required present", QueryTag("team", "red"), true},
		{"required absent", QueryTag("team", "blue"), false},
		{"required label", QueryLabel("active"), true},
		{"required label with value mismatch", QueryLabel("team"), false},
		{"all required present", NewQuery(RequireTag("team", "red"), RequireTag("zone", "a")), true},
		{"one required missing", NewQuery(RequireTag("team", "red"), RequireTag("zone", "b")), false},
		{"match any hit", NewQuery(MatchTag("team", "red"), MatchTag("team", "blue")), true},
		{"match any miss", NewQuery(MatchTag("team", "blue"), MatchTag("zone", "b")), false},
		{"required and match both satisfied", NewQuery(RequireTag("zone", "a"), MatchTag("team", "red")), true},
		{"required satisfied but match empty set imposes nothing", NewQuery(RequireTag("zone", "a")), true},
		{"required satisfied but no match hit", NewQuery(RequireTag("zone", "a"), MatchTag("team", "blue")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.query.Test(holder); got != tc.want {
				t.Fatalf("Test = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestQueryAgainstEmptyHolder(t *testing.T) {
	empty := NewMeta()
	if !NewQuery().Test(empty) {
		t.Fatalf("empty query must match an untagged holder")
	}
	if QueryLabel("team").Test(empty) {
		t.Fatalf("required label must fail on an untagged holder")
	}
	if QueryAnyLabel("team").Test(empty) {
		t.Fatalf("non-empty match set must fail on an untagged holder")
	}
}

func TestQueryFactoriesFromHolder(t *testing.T) {
	src := NewMeta(WithTag("team", "red"), WithTag("zone", "a"))

	all := QueryOf(src)
	if !all.Test(NewMeta(WithTagsOf(src), WithTag("extra", "x"))) {
		t.Fatalf("QueryOf must accept supersets of the source tags")
	}
	if all.Test(MetaOfTag("team", "red")) {
		t.Fatalf("QueryOf must require every source tag")
	}

	any := QueryAnyOf(src)
	if !any.Test(MetaOfTag("zone", "a")) {
		t.Fatalf("QueryAnyOf must accept a single overlapping tag")
	}
	if any.Test(MetaOfTag("team", "blue")) {
		t.Fatalf("QueryAnyOf must reject disjoint holders")
	}
}

func TestQueryIsDetachedFromSourceHolder(t *testing.T) {
	src := MetaOfTag("team", "red")
	q := QueryOf(src)
	src.AddTag("team", "blue")

	if !q.Test(MetaOfTag("team", "red")) {
		t.Fatalf("query must snapshot source tags at construction")
	}
}
