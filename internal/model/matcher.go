package model

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MatcherType discriminates the routing matcher variants on the wire.
type MatcherType string

const (
	MatcherAll     MatcherType = "all"
	MatcherLiteral MatcherType = "literal"
)

// Matcher selects which incoming addresses a rule applies to. Value is
// the matched address for literal matchers and empty for catch-all.
type Matcher struct {
	Type  MatcherType
	Value string
}

// ParseMatcher turns a free-text CLI token into a matcher. "*" maps to
// the catch-all matcher; any other text becomes a literal matcher. The
// value is not validated here; the creation resolver completes bare
// local parts into full addresses.
func ParseMatcher(s string) Matcher {
	if s == "*" {
		return Matcher{Type: MatcherAll}
	}
	return Matcher{Type: MatcherLiteral, Value: s}
}

// String renders the matcher for console output.
func (m Matcher) String() string {
	if m.Type == MatcherAll {
		return "* (catch-all)"
	}
	return m.Value
}

type matcherWire struct {
	Type  MatcherType `json:"type"`
	Value *string     `json:"value,omitempty"`
	Field string      `json:"field,omitempty"`
}

// MarshalJSON emits the provider's wire form. Literal matchers always
// carry the fixed field discriminator `"field": "to"`, even for an empty
// value; catch-all matchers carry only the type tag.
func (m Matcher) MarshalJSON() ([]byte, error) {
	w := matcherWire{Type: m.Type}
	if m.Type == MatcherLiteral {
		v := m.Value
		w.Value = &v
		w.Field = "to"
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads the type tag and value. The provider sends the
// "field" discriminator back on literal matchers; it is ignored on input.
func (m *Matcher) UnmarshalJSON(data []byte) error {
	var w matcherWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Type = w.Type
	m.Value = ""
	if w.Value != nil {
		m.Value = *w.Value
	}
	return nil
}
