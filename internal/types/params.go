package types

import "slices"

// Params holds a parsed header: an insertion-ordered two-level mapping of
// section name to parameter name to Value.
//
// Section names use the vendor's own vocabulary ("DP", "AP", "SV" for
// SmartSEM; literal bracketed names like "[Beam]" for xT). Within a
// section each parameter name appears at most once; setting an existing
// name replaces the value in place without changing its position.
//
// Params is mutated once, in place, by the derived-value step inside the
// vendor parser, and is read-only afterwards.
type Params struct {
	order    []string
	sections map[string]*section
}

type section struct {
	order  []string
	values map[string]Value
}

// NewParams returns an empty Params.
func NewParams() *Params {
	return &Params{sections: make(map[string]*section)}
}

// AddSection ensures a section exists, creating it empty if necessary.
// Sections keep the order in which they were first added.
func (p *Params) AddSection(name string) {
	p.ensure(name)
}

func (p *Params) ensure(name string) *section {
	if s, ok := p.sections[name]; ok {
		return s
	}
	s := &section{values: make(map[string]Value)}
	p.sections[name] = s
	p.order = append(p.order, name)
	return s
}

// Set stores a value under section/name, creating the section if needed.
// An existing entry is replaced in place, keeping its position.
func (p *Params) Set(sec, name string, v Value) {
	s := p.ensure(sec)
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = v
}

// Get returns the value stored under section/name.
func (p *Params) Get(sec, name string) (Value, bool) {
	s, ok := p.sections[sec]
	if !ok {
		return Value{}, false
	}
	v, ok := s.values[name]
	return v, ok
}

// HasSection reports whether a section exists, even if empty.
func (p *Params) HasSection(sec string) bool {
	_, ok := p.sections[sec]
	return ok
}

// Sections returns the section names in insertion order.
func (p *Params) Sections() []string {
	return slices.Clone(p.order)
}

// Names returns the parameter names of a section in insertion order.
func (p *Params) Names(sec string) []string {
	s, ok := p.sections[sec]
	if !ok {
		return nil
	}
	return slices.Clone(s.order)
}

// Len returns the total number of entries across all sections.
func (p *Params) Len() int {
	n := 0
	for _, s := range p.sections {
		n += len(s.order)
	}
	return n
}

// Rename moves the entry stored under section/old to section/new. The
// renamed entry is appended at the end of the section, matching a
// delete-and-reinsert. Returns false if the old entry does not exist.
func (p *Params) Rename(sec, old, new string) bool {
	s, ok := p.sections[sec]
	if !ok {
		return false
	}
	v, ok := s.values[old]
	if !ok {
		return false
	}
	delete(s.values, old)
	if i := slices.Index(s.order, old); i != -1 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	if _, exists := s.values[new]; !exists {
		s.order = append(s.order, new)
	}
	s.values[new] = v
	return true
}

// Equal reports whether two Params hold the same sections, names and
// values in the same order.
func (p *Params) Equal(o *Params) bool {
	if o == nil || !slices.Equal(p.order, o.order) {
		return false
	}
	for name, s := range p.sections {
		os, ok := o.sections[name]
		if !ok || !slices.Equal(s.order, os.order) {
			return false
		}
		for k, v := range s.values {
			if ov, ok := os.values[k]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}
