package palette

import "strings"

// Set is an ordered, name-addressable collection of palettes
type Set struct {
	list []Palette
}

// Builtin returns the palettes shipped with the explorer, default first
func Builtin() *Set {
	return &Set{list: []Palette{Heaven, Fire, Ocean, Mono}}
}

// Add appends p, replacing any palette with the same name in place
func (s *Set) Add(p Palette) {
	for i := range s.list {
		if s.list[i].Name == p.Name {
			s.list[i] = p
			return
		}
	}
	s.list = append(s.list, p)
}

// Lookup finds a palette by case-insensitive name
func (s *Set) Lookup(name string) (Palette, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range s.list {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Next returns the palette after the named one, wrapping around
// An unknown name yields the first palette
func (s *Set) Next(name string) Palette {
	for i, p := range s.list {
		if p.Name == name {
			return s.list[(i+1)%len(s.list)]
		}
	}
	return s.list[0]
}

// Names lists palette names in order
func (s *Set) Names() []string {
	names := make([]string, len(s.list))
	for i, p := range s.list {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of palettes
func (s *Set) Len() int {
	return len(s.list)
}
