// Package configfile provides an editable model of INI-style config text.
//
// The model keeps every line of the source, including comments and blank
// lines, so that serializing an unmodified document reproduces its input
// byte for byte. Edits regenerate only the lines they touch; everything
// else round-trips untouched.
package configfile

import (
	"fmt"
	"strings"
)

type entryKind int

const (
	entryBlank entryKind = iota
	entryComment
	entryOption
)

type entry struct {
	kind entryKind
	key  string
	raw  []string
}

// Section is an ordered run of options, comments, and blank lines beneath a
// [name] heading.
type Section struct {
	name    string
	heading string
	entries []*entry
}

// Document is an ordered sequence of sections, preceded by an optional
// preamble of comments and blank lines.
type Document struct {
	preamble        []string
	sections        []*Section
	trailingNewline bool
}

// Parse builds a Document from raw config text. Lines that are neither a
// section heading, an option, a continuation, a comment, nor blank are
// reported as errors.
func Parse(text string) (*Document, error) {
	doc := &Document{trailingNewline: strings.HasSuffix(text, "\n")}

	lines := strings.Split(text, "\n")
	if doc.trailingNewline {
		lines = lines[:len(lines)-1]
	}

	var current *Section
	var lastOption *entry

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "[") && strings.Contains(trimmed, "]"):
			name := trimmed[1:strings.Index(trimmed, "]")]
			current = &Section{name: name, heading: line}
			doc.sections = append(doc.sections, current)
			lastOption = nil

		case trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";"):
			kind := entryComment
			if trimmed == "" {
				kind = entryBlank
			}
			if current == nil {
				doc.preamble = append(doc.preamble, line)
				continue
			}
			current.entries = append(current.entries, &entry{kind: kind, raw: []string{line}})
			if kind == entryBlank {
				lastOption = nil
			}

		case (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && lastOption != nil:
			lastOption.raw = append(lastOption.raw, line)

		case strings.ContainsAny(line, "=:"):
			if current == nil {
				return nil, fmt.Errorf("line %d: option %q before any section", i+1, trimmed)
			}
			delim := strings.IndexAny(line, "=:")
			opt := &entry{
				kind: entryOption,
				key:  strings.TrimSpace(line[:delim]),
				raw:  []string{line},
			}
			current.entries = append(current.entries, opt)
			lastOption = opt

		default:
			return nil, fmt.Errorf("line %d: malformed config line %q", i+1, line)
		}
	}

	return doc, nil
}

// String serializes the document. Untouched regions reproduce their source
// text exactly.
func (d *Document) String() string {
	var lines []string
	lines = append(lines, d.preamble...)
	for _, sec := range d.sections {
		lines = append(lines, sec.heading)
		for _, e := range sec.entries {
			lines = append(lines, e.raw...)
		}
	}
	out := strings.Join(lines, "\n")
	if d.trailingNewline {
		out += "\n"
	}
	return out
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	for _, sec := range d.sections {
		if sec.name == name {
			return sec, true
		}
	}
	return nil, false
}

// HasSection reports whether the named section exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.Section(name)
	return ok
}

// AddSectionAfter inserts a new empty [name] section immediately after the
// named anchor section, or at the end if the anchor is absent. The section
// is separated from its predecessor by a blank line.
func (d *Document) AddSectionAfter(anchor, name string) *Section {
	sec := &Section{name: name, heading: "[" + name + "]"}

	at := len(d.sections)
	for i, s := range d.sections {
		if s.name == anchor {
			at = i + 1
			break
		}
	}

	if at > 0 {
		prev := d.sections[at-1]
		if n := len(prev.entries); n == 0 || prev.entries[n-1].kind != entryBlank {
			prev.entries = append(prev.entries, &entry{kind: entryBlank, raw: []string{""}})
		}
	}

	d.sections = append(d.sections, nil)
	copy(d.sections[at+1:], d.sections[at:])
	d.sections[at] = sec
	return sec
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// HasOption reports whether the section contains an option with the key.
func (s *Section) HasOption(key string) bool {
	return s.optionIndex(key) >= 0
}

// OptionKeys lists the section's option keys in order.
func (s *Section) OptionKeys() []string {
	var keys []string
	for _, e := range s.entries {
		if e.kind == entryOption {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values returns the option's values: the inline remainder of the key line,
// if any, followed by one value per continuation line. Blank values are
// dropped.
func (s *Section) Values(key string) []string {
	i := s.optionIndex(key)
	if i < 0 {
		return nil
	}
	var values []string
	for j, raw := range s.entries[i].raw {
		v := raw
		if j == 0 {
			v = v[strings.IndexAny(v, "=:")+1:]
		}
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// SetValue sets the option to a single inline value, creating the option at
// the end of the section if absent.
func (s *Section) SetValue(key, value string) {
	e := s.ensureOption(key, len(s.entries))
	e.raw = []string{key + " = " + value}
}

// SetValues sets the option to a multi-line value list, one indented value
// per line, creating the option at the end of the section if absent. Any
// previous value is replaced entirely.
func (s *Section) SetValues(key string, values []string) {
	e := s.ensureOption(key, len(s.entries))
	raw := []string{key + " ="}
	for _, v := range values {
		raw = append(raw, "    "+v)
	}
	e.raw = raw
}

// optionIndex returns the entry index of the option with the key, or -1.
func (s *Section) optionIndex(key string) int {
	for i, e := range s.entries {
		if e.kind == entryOption && e.key == key {
			return i
		}
	}
	return -1
}

func (s *Section) ensureOption(key string, at int) *entry {
	if i := s.optionIndex(key); i >= 0 {
		return s.entries[i]
	}
	e := &entry{kind: entryOption, key: key, raw: []string{key + " ="}}
	if at >= len(s.entries) {
		s.entries = append(s.entries, e)
		return e
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[at+1:], s.entries[at:])
	s.entries[at] = e
	return e
}

// EnsureOptionFirst guarantees an option with the key exists as the first
// entry of the section. An existing option keeps its position and value.
func (s *Section) EnsureOptionFirst(key string) {
	if s.HasOption(key) {
		return
	}
	s.ensureOption(key, 0)
}

// InsertCommentBefore places a comment line directly above the named option.
// The comment is not duplicated if the same text already sits there.
func (s *Section) InsertCommentBefore(key, comment string) {
	i := s.optionIndex(key)
	if i < 0 {
		return
	}
	if i > 0 {
		prev := s.entries[i-1]
		if prev.kind == entryComment && len(prev.raw) == 1 && prev.raw[0] == comment {
			return
		}
	}
	e := &entry{kind: entryComment, raw: []string{comment}}
	s.entries = append(s.entries, nil)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
}

// InsertOptionBefore places a new inline-valued option directly above the
// named anchor option. Nothing happens if the key already exists anywhere in
// the section.
func (s *Section) InsertOptionBefore(anchor, key, value string) {
	if s.HasOption(key) {
		return
	}
	i := s.optionIndex(anchor)
	if i < 0 {
		s.SetValue(key, value)
		return
	}
	e := &entry{kind: entryOption, key: key, raw: []string{key + " = " + value}}
	s.entries = append(s.entries, nil)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
}
