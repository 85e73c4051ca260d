package cloudflare

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"email-routing-cli/internal/config"
	"email-routing-cli/internal/model"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the provider's REST API. It performs no retries and
// no caching; timeouts belong to the injected http.Client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	apiToken   string
	apiKey     string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, used by
// tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a provider client from credentials. The credentials
// are passed through as auth headers unexamined.
func NewClient(creds *config.Credentials, opts ...Option) *Client {
	c := &Client{
		httpClient: cleanhttp.DefaultPooledClient(),
		baseURL:    DefaultBaseURL,
		email:      creds.Email,
		apiToken:   creds.APIToken,
		apiKey:     creds.APIKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VerifyToken checks the API token against the provider.
func (c *Client) VerifyToken(ctx context.Context) (*TokenInfo, error) {
	var info TokenInfo
	if err := c.call(ctx, http.MethodGet, "/user/tokens/verify", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListZones returns all zones visible to the account.
func (c *Client) ListZones(ctx context.Context) ([]model.Zone, error) {
	var zones []model.Zone
	if err := c.call(ctx, http.MethodGet, "/zones", nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetEmailRoutingSettings returns a zone's email routing configuration.
func (c *Client) GetEmailRoutingSettings(ctx context.Context, zoneID string) (*RoutingSettings, error) {
	var settings RoutingSettings
	path := fmt.Sprintf("/zones/%s/email/routing", zoneID)
	if err := c.call(ctx, http.MethodGet, path, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ListRoutingRules returns all routing rules of a zone.
func (c *Client) ListRoutingRules(ctx context.Context, zoneID string) ([]model.Rule, error) {
	var rules []model.Rule
	path := fmt.Sprintf("/zones/%s/email/routing/rules", zoneID)
	if err := c.call(ctx, http.MethodGet, path, nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// CreateRoutingRule creates a routing rule and returns the rule the
// provider stored, including its assigned ID.
func (c *Client) CreateRoutingRule(ctx context.Context, zoneID string, req model.CreateRuleRequest) (*model.Rule, error) {
	var rule model.Rule
	path := fmt.Sprintf("/zones/%s/email/routing/rules", zoneID)
	if err := c.call(ctx, http.MethodPost, path, req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteRoutingRule deletes a rule by its exact ID and reports the
// provider's success flag. A false flag is returned to the caller, not
// turned into an error here.
func (c *Client) DeleteRoutingRule(ctx context.Context, zoneID, ruleID string) (*DeleteResult, error) {
	path := fmt.Sprintf("/zones/%s/email/routing/rules/%s", zoneID, ruleID)
	env, _, err := c.send(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Success: env.Success, Errors: env.Errors}, nil
}

// ListDestinationAddresses returns the destination mailboxes registered
// with an account.
func (c *Client) ListDestinationAddresses(ctx context.Context, accountID string) ([]model.Address, error) {
	var addrs []model.Address
	path := fmt.Sprintf("/accounts/%s/email/routing/addresses", accountID)
	if err := c.call(ctx, http.MethodGet, path, nil, &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// call performs a request and requires a result in the response. A
// response without one surfaces as *APIError wrapping ErrNoResult.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	env, status, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if !env.hasResult() {
		return &APIError{
			StatusCode:    status,
			Errors:        env.Errors,
			Messages:      env.Messages,
			missingResult: true,
		}
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("failed to decode result for %s %s: %w", method, path, err)
	}
	return nil
}

// send performs a request and decodes the response envelope.
func (c *Client) send(ctx context.Context, method, path string, body any) (*envelope, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("X-Auth-Email", c.email)
	req.Header.Set("X-Auth-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logrus.Debugf("%s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}

	return &env, resp.StatusCode, nil
}
