// Package cfg implements the cfg configuration text format: tokenizing and
// parsing source text into a document of sections and typed key/value pairs,
// rendering documents back to text, and decoding them into Go values.
package cfg

import "strings"

// Document is an ordered collection of sections. Section names are unique,
// compared case-insensitively, and lookups follow the same rule.
type Document struct {
	sections []*Section
}

// NewDocument returns a document holding the given sections, copied as
// given, without uniqueness checks.
func NewDocument(sections []*Section) *Document {
	d := &Document{}
	d.sections = append(d.sections, sections...)
	return d
}

// Parse tokenizes src and parses it into a document: a sequence of sections,
// each a "[Name]" header followed by keys, until the token stream is
// exhausted. Source with no tokens at all is an error. Duplicate section
// names (case-insensitive) are fatal.
func Parse(src string) (*Document, error) {
	ts, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	return parseDocument(ts)
}

func parseDocument(ts *TokenStream) (*Document, error) {
	if ts.IsEmpty() {
		return nil, parseErrorf("cannot parse document from an empty token stream")
	}

	var sections []*Section

	for !ts.IsEmpty() {
		s, err := parseSection(ts)
		if err != nil {
			return nil, err
		}

		if !s.IsValid() {
			return nil, parseErrorf("cannot parse document: the section name %q is invalid", s.Name())
		}

		for _, sect := range sections {
			if strings.EqualFold(sect.Name(), s.Name()) {
				return nil, parseErrorf("cannot parse document: a section with the name %q already exists", sect.Name())
			}
		}

		sections = append(sections, s)
	}

	return NewDocument(sections), nil
}

// Len returns the number of sections the document contains.
func (d *Document) Len() int {
	return len(d.sections)
}

// IsEmpty reports whether the document contains no sections.
func (d *Document) IsEmpty() bool {
	return len(d.sections) == 0
}

// Sections returns the document's sections in insertion order. The returned
// slice is the document's own storage; callers must not grow it.
func (d *Document) Sections() []*Section {
	return d.sections
}

// IndexOf returns the index of the section with the given name, or -1 if no
// such section exists. Names are compared case-insensitively.
func (d *Document) IndexOf(name string) int {
	for i := range d.sections {
		if strings.EqualFold(d.sections[i].Name(), name) {
			return i
		}
	}

	return -1
}

// Contains reports whether the document has a section with the given name.
func (d *Document) Contains(name string) bool {
	return d.IndexOf(name) >= 0
}

// Get returns the section with the given name, or nil if no such section
// exists.
func (d *Document) Get(name string) *Section {
	if i := d.IndexOf(name); i >= 0 {
		return d.sections[i]
	}

	return nil
}

// GetAt returns the section at the given index, or nil if the index is out
// of range.
func (d *Document) GetAt(index int) *Section {
	if index < 0 || index >= len(d.sections) {
		return nil
	}

	return d.sections[index]
}

// Push appends a section to the document. It reports false when the section
// is invalid or a section with the same name already exists.
func (d *Document) Push(s *Section) bool {
	if s == nil || !s.IsValid() || d.Contains(s.Name()) {
		return false
	}

	d.sections = append(d.sections, s)
	return true
}

// Insert places a section at the given index. It reports false when the
// index is out of range, the section is invalid, or a section with the same
// name already exists.
func (d *Document) Insert(index int, s *Section) bool {
	if index < 0 || index >= len(d.sections) || s == nil || !s.IsValid() || d.Contains(s.Name()) {
		return false
	}

	d.sections = append(d.sections[:index], append([]*Section{s}, d.sections[index:]...)...)
	return true
}

// Remove deletes the section with the given name. It reports false when no
// such section exists.
func (d *Document) Remove(name string) bool {
	i := d.IndexOf(name)
	if i < 0 {
		return false
	}

	d.RemoveAt(i)
	return true
}

// RemoveAt deletes the section at the given index. Out-of-range indexes are
// ignored.
func (d *Document) RemoveAt(index int) {
	if index < 0 || index >= len(d.sections) {
		return
	}

	d.sections = append(d.sections[:index], d.sections[index+1:]...)
}

// Clear removes all sections from the document.
func (d *Document) Clear() {
	d.sections = nil
}
