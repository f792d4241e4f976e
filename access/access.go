// Package access provides the read and write sets of array accesses made by
// a statement.
//
// An access is a pair of array name and subscript text, e.g. a[i+1] is
// Access{Array: "a", Subscript: "i+1"}.
package access

// Access is an indexed access of a named array.
// Access is comparable and two accesses are equal iff both fields are.
type Access struct {
	Array     string `json:"array" yaml:"array"`
	Subscript string `json:"subscript" yaml:"subscript"`
}

func (a Access) String() string {
	return a.Array + "[" + a.Subscript + "]"
}

// Set is a set of Access.
//
// Duplicates are collapsed and iteration follows first insertion, so two
// sets built from the same statement always iterate in the same order.
type Set struct {
	elems []Access
	index map[Access]int
}

// NewSet returns a new Set holding accesses.
func NewSet(accesses ...Access) *Set {
	s := &Set{index: make(map[Access]int)}
	for _, a := range accesses {
		s.Add(a)
	}
	return s
}

// Add inserts a into the set, returns false if it is already a member.
func (s *Set) Add(a Access) bool {
	if _, exists := s.index[a]; exists {
		return false
	}
	s.index[a] = len(s.elems)
	s.elems = append(s.elems, a)
	return true
}

// Contains returns true if a is a member of the set.
func (s *Set) Contains(a Access) bool {
	_, exists := s.index[a]
	return exists
}

// Len returns the number of accesses in the set.
func (s *Set) Len() int { return len(s.elems) }

// Elems returns the accesses of the set.
func (s *Set) Elems() []Access {
	elems := make([]Access, len(s.elems))
	copy(elems, s.elems)
	return elems
}

// Array returns the accesses of the set to array name.
func (s *Set) Array(name string) []Access {
	var elems []Access
	for _, a := range s.elems {
		if a.Array == name {
			elems = append(elems, a)
		}
	}
	return elems
}
