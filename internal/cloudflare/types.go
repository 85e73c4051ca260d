package cloudflare

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ErrNoResult marks a provider response that parsed cleanly but carried
// no result where one was required. Callers can detect it with errors.Is
// to distinguish a missing result from a transport failure.
var ErrNoResult = errors.New("provider response contained no result")

// ErrCredentialsInvalid marks a token verification that reported a
// non-active status.
var ErrCredentialsInvalid = errors.New("api token is not active")

// envelope is the provider's response wrapper around every call.
type envelope struct {
	Success  bool                `json:"success"`
	Errors   []ResponseError     `json:"errors"`
	Messages []ResponseInfo      `json:"messages"`
	Result   jsoniter.RawMessage `json:"result"`
}

func (e *envelope) hasResult() bool {
	return len(e.Result) > 0 && string(e.Result) != "null"
}

// ResponseError is one structured error entry from the provider,
// possibly carrying a nested error chain.
type ResponseError struct {
	Code       int             `json:"code"`
	Message    string          `json:"message"`
	ErrorChain []ResponseError `json:"error_chain,omitempty"`
}

// ResponseInfo is an informational message entry from the provider.
type ResponseInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError is a provider call that completed at the HTTP level but did
// not yield a usable result. It carries the provider's structured error
// list when one was returned.
type APIError struct {
	StatusCode    int
	Errors        []ResponseError
	Messages      []ResponseInfo
	missingResult bool
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "provider call failed (status %d)", e.StatusCode)
	for _, re := range e.Errors {
		fmt.Fprintf(&b, ": %d %s", re.Code, re.Message)
		for _, chained := range re.ErrorChain {
			fmt.Fprintf(&b, " (%d %s)", chained.Code, chained.Message)
		}
	}
	if len(e.Errors) == 0 && e.missingResult {
		b.WriteString(": no result in response")
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	if e.missingResult {
		return ErrNoResult
	}
	return nil
}

// TokenStatus is the lifecycle state of an API token.
type TokenStatus string

const (
	TokenActive   TokenStatus = "active"
	TokenDisabled TokenStatus = "disabled"
	TokenExpired  TokenStatus = "expired"
)

// TokenInfo is the result of a token verification call.
type TokenInfo struct {
	ID        string      `json:"id"`
	Status    TokenStatus `json:"status"`
	ExpiresOn string      `json:"expires_on,omitempty"`
	NotBefore string      `json:"not_before,omitempty"`
}

// RoutingStatus is the provisioning state of a zone's email routing.
type RoutingStatus string

const (
	RoutingReady                 RoutingStatus = "ready"
	RoutingUnconfigured          RoutingStatus = "unconfigured"
	RoutingMisconfigured         RoutingStatus = "misconfigured"
	RoutingMisconfiguredOrLocked RoutingStatus = "misconfigured/locked"
	RoutingUnlocked              RoutingStatus = "unlocked"
)

// RoutingSettings is a zone's email routing configuration. Name is the
// routing domain used to complete bare local parts.
type RoutingSettings struct {
	ID       string        `json:"id"`
	Enabled  bool          `json:"enabled"`
	Name     string        `json:"name"`
	Created  string        `json:"created,omitempty"`
	Modified string        `json:"modified,omitempty"`
	Status   RoutingStatus `json:"status,omitempty"`
}

// DeleteResult reports the provider's success flag for a rule deletion,
// with any structured errors attached.
type DeleteResult struct {
	Success bool
	Errors  []ResponseError
}
