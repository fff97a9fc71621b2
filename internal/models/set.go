package models

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of codes. Sets are treated as values: With and
// Without return a new set and leave the receiver untouched. A nil or empty set
// holds no members.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet builds a set holding the given values.
func NewSet[T cmp.Ordered](values ...T) Set[T] {
	if len(values) == 0 {
		return nil
	}
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Empty reports whether the set has no members
func (s Set[T]) Empty() bool {
	return len(s) == 0
}

// Has reports whether v is a member.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// With returns a copy of s that also holds v.
func (s Set[T]) With(v T) Set[T] {
	out := make(Set[T], len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[v] = struct{}{}
	return out
}

// Without returns a copy of s without v. Removing the last member yields nil,
// so an emptied set compares equal to one that was never populated.
func (s Set[T]) Without(v T) Set[T] {
	if len(s) == 0 || (len(s) == 1 && s.Has(v)) {
		return nil
	}
	out := make(Set[T], len(s))
	for k := range s {
		if k != v {
			out[k] = struct{}{}
		}
	}
	return out
}

// Toggle adds v when absent and removes it when present.
func (s Set[T]) Toggle(v T) Set[T] {
	if s.Has(v) {
		return s.Without(v)
	}
	return s.With(v)
}

// Sorted returns the members in ascending order.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
