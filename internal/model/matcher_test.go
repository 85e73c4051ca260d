package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatcher(t *testing.T) {
	all := ParseMatcher("*")
	assert.Equal(t, MatcherAll, all.Type)
	assert.Empty(t, all.Value)

	lit := ParseMatcher("bob")
	assert.Equal(t, MatcherLiteral, lit.Type)
	assert.Equal(t, "bob", lit.Value)
}

func TestMatcherString(t *testing.T) {
	assert.Equal(t, "* (catch-all)", Matcher{Type: MatcherAll}.String())
	assert.Equal(t, "bob@x.com", Matcher{Type: MatcherLiteral, Value: "bob@x.com"}.String())
}

// Literal matchers always serialize with the fixed "field": "to"
// discriminator, including for an empty value.
func TestMatcherMarshalLiteralField(t *testing.T) {
	data, err := json.Marshal(Matcher{Type: MatcherLiteral, Value: "bob@x.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"literal","value":"bob@x.com","field":"to"}`, string(data))

	data, err = json.Marshal(Matcher{Type: MatcherLiteral, Value: ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"literal","value":"","field":"to"}`, string(data))
}

func TestMatcherMarshalAll(t *testing.T) {
	data, err := json.Marshal(Matcher{Type: MatcherAll})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"all"}`, string(data))
}

// The "field" discriminator is output-only: it is accepted and ignored
// on input.
func TestMatcherUnmarshal(t *testing.T) {
	var m Matcher
	err := json.Unmarshal([]byte(`{"type":"literal","value":"a@x.com","field":"to"}`), &m)
	require.NoError(t, err)
	assert.Equal(t, Matcher{Type: MatcherLiteral, Value: "a@x.com"}, m)

	err = json.Unmarshal([]byte(`{"type":"all"}`), &m)
	require.NoError(t, err)
	assert.Equal(t, Matcher{Type: MatcherAll}, m)
}
