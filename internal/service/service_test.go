package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"email-routing-cli/internal/cloudflare"
	"email-routing-cli/internal/model"
)

// fakeAPI implements RoutingAPI for tests.
type fakeAPI struct {
	zones        []model.Zone
	zonesErr     error
	settings     *cloudflare.RoutingSettings
	settingsErr  error
	rules        []model.Rule
	rulesErr     error
	addresses    []model.Address
	addressesErr error

	createdReq   *model.CreateRuleRequest
	createdRule  *model.Rule
	deleteResult *cloudflare.DeleteResult
	deleteErr    error
	deletedZone  string
	deletedRule  string
}

func (f *fakeAPI) ListZones(ctx context.Context) ([]model.Zone, error) {
	return f.zones, f.zonesErr
}

func (f *fakeAPI) GetEmailRoutingSettings(ctx context.Context, zoneID string) (*cloudflare.RoutingSettings, error) {
	return f.settings, f.settingsErr
}

func (f *fakeAPI) ListRoutingRules(ctx context.Context, zoneID string) ([]model.Rule, error) {
	return f.rules, f.rulesErr
}

func (f *fakeAPI) CreateRoutingRule(ctx context.Context, zoneID string, req model.CreateRuleRequest) (*model.Rule, error) {
	f.createdReq = &req
	if f.createdRule != nil {
		return f.createdRule, nil
	}
	rule := &model.Rule{
		ID:       "created",
		Actions:  req.Actions,
		Matchers: req.Matchers,
		Enabled:  true,
		Name:     req.Name,
		Priority: req.Priority,
	}
	return rule, nil
}

func (f *fakeAPI) DeleteRoutingRule(ctx context.Context, zoneID, ruleID string) (*cloudflare.DeleteResult, error) {
	f.deletedZone = zoneID
	f.deletedRule = ruleID
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	if f.deleteResult != nil {
		return f.deleteResult, nil
	}
	return &cloudflare.DeleteResult{Success: true}, nil
}

func (f *fakeAPI) ListDestinationAddresses(ctx context.Context, accountID string) ([]model.Address, error) {
	return f.addresses, f.addressesErr
}

func uintPtr(v uint) *uint { return &v }

func testZone() model.Zone {
	return model.Zone{ID: "z1", Account: model.ZoneAccount{ID: "a1", Name: "Account"}}
}

func TestSelectZonePicksLast(t *testing.T) {
	api := &fakeAPI{zones: []model.Zone{
		{ID: "z1", Account: model.ZoneAccount{ID: "a1", Name: "First"}},
		{ID: "z2", Account: model.ZoneAccount{ID: "a2", Name: "Second"}},
	}}
	svc := New(api)

	zone, err := svc.SelectZone(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "z2", zone.ID)
}

func TestSelectZoneEmptyList(t *testing.T) {
	svc := New(&fakeAPI{})

	_, err := svc.SelectZone(context.Background())
	assert.ErrorIs(t, err, ErrNoZoneAvailable)
}

func TestSelectZonePropagatesProviderError(t *testing.T) {
	svc := New(&fakeAPI{zonesErr: &cloudflare.APIError{StatusCode: 500}})

	_, err := svc.SelectZone(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoZoneAvailable)
}

func TestListRulesSortsByPriorityDescending(t *testing.T) {
	api := &fakeAPI{rules: []model.Rule{
		{ID: "none", Enabled: true},
		{ID: "five", Enabled: true, Priority: uintPtr(5)},
		{ID: "zero", Enabled: true, Priority: uintPtr(0)},
		{ID: "three", Enabled: true, Priority: uintPtr(3)},
	}}
	svc := New(api)

	rules, err := svc.ListRules(context.Background(), testZone())
	require.NoError(t, err)
	require.Len(t, rules, 4)
	assert.Equal(t, "five", rules[0].ID)
	assert.Equal(t, "three", rules[1].ID)
	// Absent priority counts as zero; equal keys keep provider order.
	assert.Equal(t, "none", rules[2].ID)
	assert.Equal(t, "zero", rules[3].ID)
}

func TestListAddresses(t *testing.T) {
	api := &fakeAPI{addresses: []model.Address{{ID: "addr1", Email: "dest@y.com"}}}
	svc := New(api)

	addrs, err := svc.ListAddresses(context.Background(), testZone())
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "dest@y.com", addrs[0].Email)
}
