// Package attr parses loosely structured "Key: Value" product attribute
// strings into a queryable, order-preserving set.
package attr

import "strings"

// Attribute is one parsed product fact. Original always holds the raw
// input string so callers that need the exact wording can recover it.
type Attribute struct {
	Key      string
	Value    string
	Original string
}

// Set is an ordered sequence of attributes plus a case-insensitive
// key lookup. The lookup is a derived index: on duplicate keys the later
// occurrence wins in the lookup, but every occurrence stays in order.
type Set struct {
	attrs  []Attribute
	lookup map[string]string
}

// Parse converts raw attribute strings into a Set. It never fails: every
// input element yields exactly one Attribute. Strings are split on the
// first colon only, so values may themselves contain colons. Strings with
// no colon (or a leading colon) are kept unkeyed — the lower-cased whole
// string becomes the key and the original string the value.
func Parse(raw []string) Set {
	s := Set{
		attrs:  make([]Attribute, 0, len(raw)),
		lookup: make(map[string]string, len(raw)),
	}
	for _, r := range raw {
		a := parseOne(r)
		s.attrs = append(s.attrs, a)
		s.lookup[a.Key] = a.Value
	}
	return s
}

func parseOne(raw string) Attribute {
	if idx := strings.Index(raw, ":"); idx > 0 {
		return Attribute{
			Key:      strings.ToLower(strings.TrimSpace(raw[:idx])),
			Value:    strings.TrimSpace(raw[idx+1:]),
			Original: raw,
		}
	}
	return Attribute{
		Key:      strings.ToLower(raw),
		Value:    raw,
		Original: raw,
	}
}

// Get returns the value for a key, case-insensitively. For repeated keys
// the last parsed value is returned.
func (s Set) Get(key string) (string, bool) {
	v, ok := s.lookup[strings.ToLower(key)]
	return v, ok
}

// Has reports whether any attribute parsed to the given key.
func (s Set) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Attrs returns the attributes in input order.
func (s Set) Attrs() []Attribute {
	return s.attrs
}

// Len returns the number of attributes, counting duplicates.
func (s Set) Len() int {
	return len(s.attrs)
}
