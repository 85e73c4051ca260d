package model

import (
	"fmt"
	"strings"
)

// Rule is an email routing rule as returned by the provider. The ID is
// provider-assigned and immutable; rules are never mutated locally, only
// created and deleted through fresh API round trips.
type Rule struct {
	ID       string    `json:"id"`
	Actions  []Action  `json:"actions"`
	Matchers []Matcher `json:"matchers"`
	Enabled  bool      `json:"enabled"`
	Name     string    `json:"name,omitempty"`
	// Priority distinguishes "not set" (nil, provider default) from an
	// explicit zero; both render as no priority.
	Priority *uint `json:"priority,omitempty"`
}

// String renders the rule in the console listing format:
// matchers -> actions (ID: …, Name: …, Disabled, Priority: n).
func (r Rule) String() string {
	var b strings.Builder
	for i, m := range r.Matchers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" -> ")
	for i, a := range r.Actions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	fmt.Fprintf(&b, " (ID: %s", r.ID)
	if r.Name != "" {
		fmt.Fprintf(&b, ", Name: %s", r.Name)
	}
	if !r.Enabled {
		b.WriteString(", Disabled")
	}
	if r.Priority != nil && *r.Priority != 0 {
		fmt.Fprintf(&b, ", Priority: %d", *r.Priority)
	}
	b.WriteString(")")
	return b.String()
}

// EffectivePriority is the priority used for ordering: absent counts as
// zero.
func (r Rule) EffectivePriority() uint {
	if r.Priority == nil {
		return 0
	}
	return *r.Priority
}

// CreateRuleRequest is the request body for creating a rule. The CLI
// always builds exactly one action and one matcher; multi-action and
// multi-matcher rules are not constructible here.
type CreateRuleRequest struct {
	Actions  []Action  `json:"actions"`
	Matchers []Matcher `json:"matchers"`
	Enabled  *bool     `json:"enabled,omitempty"`
	Name     string    `json:"name,omitempty"`
	Priority *uint     `json:"priority,omitempty"`
}

// Zone is a DNS zone with its owning account.
type Zone struct {
	ID      string      `json:"id"`
	Account ZoneAccount `json:"account"`
}

// ZoneAccount identifies the account owning a zone.
type ZoneAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// String renders the zone as "<account name> (id = <zone id>)".
func (z Zone) String() string {
	return fmt.Sprintf("%s (id = %s)", z.Account.Name, z.ID)
}

// Address is a destination mailbox registered with the account. All
// fields are optional on the wire; the metadata fields are carried but
// not interpreted.
type Address struct {
	ID       string `json:"id,omitempty"`
	Created  string `json:"created,omitempty"`
	Email    string `json:"email,omitempty"`
	Modified string `json:"modified,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Verified string `json:"verified,omitempty"`
}

// String renders the address as "<email> (id = <id>)", skipping absent
// parts.
func (a Address) String() string {
	var b strings.Builder
	if a.Email != "" {
		b.WriteString(a.Email)
	}
	if a.ID != "" {
		fmt.Fprintf(&b, " (id = %s)", a.ID)
	}
	return b.String()
}
