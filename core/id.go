package core

// ID identifies an engine-owned entity, zero is never assigned
type ID uint64

// IDSource hands out monotonic entity ids
type IDSource struct {
	next ID
}

// Next returns a fresh id
func (s *IDSource) Next() ID {
	s.next++
	return s.next
}

// Reset restarts numbering, used on new game
func (s *IDSource) Reset() {
	s.next = 0
}
