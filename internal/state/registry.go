package state

// RegistryStore keeps the ordered basket names this session knows about and
// which of them is selected. It is never populated from the server.
type RegistryStore interface {
	Names() []string
	Contains(name string) bool
	Add(name string) bool
	Remove(name string) bool
	Replace(old, name string) bool
	First() string
	Selected() string
	Select(name string) bool
}

type registryStore struct {
	names    []string
	selected string
}

func NewRegistryStore() RegistryStore {
	return &registryStore{}
}

func (s *registryStore) Names() []string {
	return cloneNames(s.names)
}

// Contains is case-sensitive.
func (s *registryStore) Contains(name string) bool {
	return s.indexOf(name) >= 0
}

// Add appends a name; empty and duplicate names are refused.
func (s *registryStore) Add(name string) bool {
	if name == "" || s.Contains(name) {
		return false
	}
	s.names = append(s.names, name)
	return true
}

// Remove drops a name. Removing the selected name clears the selection.
func (s *registryStore) Remove(name string) bool {
	idx := s.indexOf(name)
	if idx < 0 {
		return false
	}
	s.names = append(s.names[:idx], s.names[idx+1:]...)
	if s.selected == name {
		s.selected = ""
	}
	return true
}

// Replace swaps old for name in place, carrying the selection along.
func (s *registryStore) Replace(old, name string) bool {
	idx := s.indexOf(old)
	if idx < 0 || name == "" || s.Contains(name) {
		return false
	}
	s.names[idx] = name
	if s.selected == old {
		s.selected = name
	}
	return true
}

func (s *registryStore) First() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[0]
}

func (s *registryStore) Selected() string {
	return s.selected
}

// Select changes the selection and reports whether it changed. The empty
// string means no selection; unknown names are refused.
func (s *registryStore) Select(name string) bool {
	if name != "" && !s.Contains(name) {
		return false
	}
	if s.selected == name {
		return false
	}
	s.selected = name
	return true
}

func (s *registryStore) indexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, existing := range s.names {
		if existing == name {
			return i
		}
	}
	return -1
}

func cloneNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	dup := make([]string, len(names))
	copy(dup, names)
	return dup
}
