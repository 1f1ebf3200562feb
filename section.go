package cfg

import "strings"

// Section is a named, ordered collection of keys. Key names are unique
// within a section, compared case-insensitively, and lookups follow the
// same rule.
type Section struct {
	name string
	keys []Key
}

// NewSection returns a section with the given name and keys. The name is
// sanitized; the keys are copied as given, without uniqueness checks.
func NewSection(name string, keys []Key) *Section {
	s := &Section{name: SanitizeName(name, '_')}
	s.keys = append(s.keys, keys...)
	return s
}

// isSectionHeader reports whether the next three tokens form a section
// header: an identifier between square brackets.
func isSectionHeader(ts *TokenStream) bool {
	peeks := ts.PeekTo(3)
	if len(peeks) < 3 {
		return false
	}

	return peeks[0].Type == TokenOpenBracket &&
		peeks[1].Type == TokenIdentifier &&
		peeks[2].Type == TokenCloseBracket
}

// parseSection parses a "[Name]" header followed by keys, stopping at the
// next section header or the end of the stream. Duplicate key names
// (case-insensitive) and invalid key names are fatal.
func parseSection(ts *TokenStream) (*Section, error) {
	if !isSectionHeader(ts) {
		return nil, parseErrorf("failed parsing section: section header not found")
	}

	ts.Pop()
	id, _ := ts.Pop()
	ts.Pop()

	var keys []Key

	for !ts.IsEmpty() {
		if isSectionHeader(ts) {
			break
		}

		k, err := ParseKey(ts)
		if err != nil {
			return nil, parseErrorf("failed parsing key in section %q: %v", id.Text, err)
		}
		if !k.IsValid() {
			return nil, parseErrorf("failed parsing key in section %q: parsed key %q is invalid", id.Text, k.Name())
		}

		for _, ky := range keys {
			if strings.EqualFold(ky.Name(), k.Name()) {
				return nil, parseErrorf("failed parsing key in section %q: a key with the name %q already exists", id.Text, ky.Name())
			}
		}

		keys = append(keys, k)
	}

	return NewSection(id.Text, keys), nil
}

// Name returns the section's name.
func (s *Section) Name() string {
	return s.name
}

// Rename changes the section's name. The name may be modified to be valid,
// see SanitizeName.
func (s *Section) Rename(name string) {
	s.name = SanitizeName(name, '_')
}

// IsValid reports whether the section's name passes IsValidName.
func (s *Section) IsValid() bool {
	return IsValidName(s.name)
}

// Len returns the number of keys the section contains.
func (s *Section) Len() int {
	return len(s.keys)
}

// IsEmpty reports whether the section contains no keys.
func (s *Section) IsEmpty() bool {
	return len(s.keys) == 0
}

// Keys returns the section's keys in insertion order. The returned slice is
// the section's own storage; callers must not grow it.
func (s *Section) Keys() []Key {
	return s.keys
}

// IndexOf returns the index of the key with the given name, or -1 if no such
// key exists. Names are compared case-insensitively.
func (s *Section) IndexOf(name string) int {
	for i := range s.keys {
		if strings.EqualFold(s.keys[i].Name(), name) {
			return i
		}
	}

	return -1
}

// Contains reports whether the section has a key with the given name.
func (s *Section) Contains(name string) bool {
	return s.IndexOf(name) >= 0
}

// Get returns a pointer to the key with the given name, or nil if no such
// key exists.
func (s *Section) Get(name string) *Key {
	if i := s.IndexOf(name); i >= 0 {
		return &s.keys[i]
	}

	return nil
}

// GetAt returns a pointer to the key at the given index, or nil if the index
// is out of range.
func (s *Section) GetAt(index int) *Key {
	if index < 0 || index >= len(s.keys) {
		return nil
	}

	return &s.keys[index]
}

// Push appends a key to the section. It reports false when the key is
// invalid or a key with the same name already exists.
func (s *Section) Push(key Key) bool {
	if !key.IsValid() || s.Contains(key.Name()) {
		return false
	}

	s.keys = append(s.keys, key)
	return true
}

// Insert places a key at the given index. It reports false when the index is
// out of range, the key is invalid, or a key with the same name already
// exists.
func (s *Section) Insert(index int, key Key) bool {
	if index < 0 || index >= len(s.keys) || !key.IsValid() || s.Contains(key.Name()) {
		return false
	}

	s.keys = append(s.keys[:index], append([]Key{key}, s.keys[index:]...)...)
	return true
}

// Remove deletes the key with the given name. It reports false when no such
// key exists.
func (s *Section) Remove(name string) bool {
	i := s.IndexOf(name)
	if i < 0 {
		return false
	}

	s.RemoveAt(i)
	return true
}

// RemoveAt deletes the key at the given index. Out-of-range indexes are
// ignored.
func (s *Section) RemoveAt(index int) {
	if index < 0 || index >= len(s.keys) {
		return
	}

	s.keys = append(s.keys[:index], s.keys[index+1:]...)
}

// Clear removes all keys from the section.
func (s *Section) Clear() {
	s.keys = nil
}
