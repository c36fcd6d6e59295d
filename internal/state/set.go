package state

import (
	"slices"

	"github.com/samber/lo"
)

// Set is a set of absolute file paths.
type Set map[string]struct{}

// NewSet returns a Set holding paths.
func NewSet(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

func (s Set) Has(path string) bool {
	_, ok := s[path]
	return ok
}

func (s Set) Add(path string) {
	s[path] = struct{}{}
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	paths := lo.Keys(map[string]struct{}(s))
	slices.Sort(paths)
	return paths
}

// Missing returns the members of candidates that are not in s, without duplicates.
func (s Set) Missing(candidates []string) []string {
	return lo.Uniq(lo.Filter(candidates, func(p string, _ int) bool {
		return !s.Has(p)
	}))
}
