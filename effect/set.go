package effect

// Set is the per-entity list of active effects, at most one record per id
type Set struct {
	active []Active
}

// Has reports whether id is active
func (s *Set) Has(id ID) bool {
	return s.index(id) >= 0
}

// Get returns the record for id
func (s *Set) Get(id ID) (Active, bool) {
	if i := s.index(id); i >= 0 {
		return s.active[i], true
	}
	return Active{}, false
}

// Len returns the number of active records
func (s *Set) Len() int {
	return len(s.active)
}

// All returns a copy of active records in processing order
func (s *Set) All() []Active {
	if len(s.active) == 0 {
		return nil
	}
	out := make([]Active, len(s.active))
	copy(out, s.active)
	return out
}

// Clear drops every record without removal handling
func (s *Set) Clear() {
	s.active = s.active[:0]
}

// Clone returns an independent copy
func (s *Set) Clone() Set {
	return Set{active: s.All()}
}

func (s *Set) index(id ID) int {
	for i := range s.active {
		if s.active[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Set) remove(id ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.active = append(s.active[:i], s.active[i+1:]...)
	return true
}
