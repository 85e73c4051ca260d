package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestRuleString(t *testing.T) {
	rule := Rule{
		ID:      "abc123",
		Enabled: true,
		Matchers: []Matcher{
			{Type: MatcherLiteral, Value: "bob@x.com"},
		},
		Actions: []Action{
			{Type: ActionForward, Value: []string{"dest@y.com"}},
		},
	}
	assert.Equal(t, "bob@x.com -> Forward to dest@y.com (ID: abc123)", rule.String())

	rule.Name = "mine"
	assert.Equal(t, "bob@x.com -> Forward to dest@y.com (ID: abc123, Name: mine)", rule.String())

	rule.Enabled = false
	assert.Equal(t, "bob@x.com -> Forward to dest@y.com (ID: abc123, Name: mine, Disabled)", rule.String())

	rule.Priority = uintPtr(7)
	assert.Equal(t, "bob@x.com -> Forward to dest@y.com (ID: abc123, Name: mine, Disabled, Priority: 7)", rule.String())
}

func TestRuleStringSkipsZeroPriority(t *testing.T) {
	rule := Rule{ID: "r", Enabled: true, Priority: uintPtr(0)}
	assert.Equal(t, " ->  (ID: r)", rule.String())
}

func TestRuleStringMultipleMatchersAndActions(t *testing.T) {
	rule := Rule{
		ID:      "r1",
		Enabled: true,
		Matchers: []Matcher{
			{Type: MatcherAll},
			{Type: MatcherLiteral, Value: "a@x.com"},
		},
		Actions: []Action{
			{Type: ActionDrop},
			{Type: ActionWorker, Value: []string{"w1", "w2"}},
		},
	}
	assert.Equal(t, "* (catch-all), a@x.com -> Drop, Worker (w1, w2) (ID: r1)", rule.String())
}

func TestEffectivePriority(t *testing.T) {
	assert.Equal(t, uint(0), Rule{}.EffectivePriority())
	assert.Equal(t, uint(0), Rule{Priority: uintPtr(0)}.EffectivePriority())
	assert.Equal(t, uint(5), Rule{Priority: uintPtr(5)}.EffectivePriority())
}

func TestZoneString(t *testing.T) {
	zone := Zone{ID: "z1", Account: ZoneAccount{ID: "a1", Name: "My Account"}}
	assert.Equal(t, "My Account (id = z1)", zone.String())
}

func TestAddressString(t *testing.T) {
	assert.Equal(t, "a@x.com (id = addr1)", Address{ID: "addr1", Email: "a@x.com"}.String())
	assert.Equal(t, "a@x.com", Address{Email: "a@x.com"}.String())
	assert.Equal(t, " (id = addr1)", Address{ID: "addr1"}.String())
	assert.Equal(t, "", Address{}.String())
}

// Priority survives JSON round trips with absent and explicit zero kept
// distinct.
func TestRulePriorityJSON(t *testing.T) {
	var rule Rule
	err := json.Unmarshal([]byte(`{"id":"r1","enabled":true}`), &rule)
	assert.NoError(t, err)
	assert.Nil(t, rule.Priority)

	err = json.Unmarshal([]byte(`{"id":"r1","enabled":true,"priority":0}`), &rule)
	assert.NoError(t, err)
	if assert.NotNil(t, rule.Priority) {
		assert.Equal(t, uint(0), *rule.Priority)
	}
}

func TestCreateRuleRequestJSON(t *testing.T) {
	req := CreateRuleRequest{
		Actions:  []Action{{Type: ActionForward, Value: []string{"dest@y.com"}}},
		Matchers: []Matcher{{Type: MatcherLiteral, Value: "bob@x.com"}},
	}
	data, err := json.Marshal(req)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"actions":[{"type":"forward","value":["dest@y.com"]}],
		"matchers":[{"type":"literal","value":"bob@x.com","field":"to"}]
	}`, string(data))
}
