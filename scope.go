package glg

// Scope owns a set of GPU objects and releases them together. Objects are
// destroyed in reverse order of registration, each exactly once.
//
// Typical use is
//
//	scope := glg.NewScope()
//	defer scope.Destroy()
//
// so release also happens when a frame panics.
type Scope struct {
	items []Destroyer
}

func NewScope() *Scope {
	return &Scope{}
}

// Add registers d for release and returns it.
func (s *Scope) Add(d Destroyer) Destroyer {
	s.items = append(s.items, d)
	return d
}

// Len returns the number of objects still owned by the scope.
func (s *Scope) Len() int {
	return len(s.items)
}

// Destroy releases every registered object, most recent first. Calling it
// again is a no-op.
func (s *Scope) Destroy() {
	for len(s.items) > 0 {
		last := len(s.items) - 1
		d := s.items[last]
		s.items = s.items[:last]
		d.Destroy()
	}
}
