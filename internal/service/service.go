// Package service implements the rule resolution engine: zone
// selection, completion of partially specified create requests, and
// fuzzy identifier resolution for deletion.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"email-routing-cli/internal/cloudflare"
	"email-routing-cli/internal/model"
)

var (
	// ErrNoZoneAvailable is returned when the account has no zones.
	ErrNoZoneAvailable = errors.New("no zone found")
	// ErrNoDestinationAddress is returned when no usable destination
	// address exists to synthesize a forward action from.
	ErrNoDestinationAddress = errors.New("no destination address found to forward to, create or specify one")
	// ErrRoutingSettingsUnavailable is returned when the provider has no
	// email routing settings for the zone.
	ErrRoutingSettingsUnavailable = errors.New("email routing settings unavailable")
)

// RoutingAPI is the narrow provider surface the engine depends on.
// *cloudflare.Client satisfies it; tests substitute fakes.
type RoutingAPI interface {
	ListZones(ctx context.Context) ([]model.Zone, error)
	GetEmailRoutingSettings(ctx context.Context, zoneID string) (*cloudflare.RoutingSettings, error)
	ListRoutingRules(ctx context.Context, zoneID string) ([]model.Rule, error)
	CreateRoutingRule(ctx context.Context, zoneID string, req model.CreateRuleRequest) (*model.Rule, error)
	DeleteRoutingRule(ctx context.Context, zoneID, ruleID string) (*cloudflare.DeleteResult, error)
	ListDestinationAddresses(ctx context.Context, accountID string) ([]model.Address, error)
}

// Service runs rule operations against a provider. All calls are
// sequential; nothing is cached between them.
type Service struct {
	api RoutingAPI
	rng *rand.Rand
}

// New creates a Service on top of a provider collaborator.
func New(api RoutingAPI) *Service {
	return &Service{
		api: api,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SelectZone picks the working zone: the last element of the provider's
// zone list. This is a simplification, not a ranking; letting the user
// choose is a known open item.
func (s *Service) SelectZone(ctx context.Context) (model.Zone, error) {
	zones, err := s.api.ListZones(ctx)
	if err != nil {
		return model.Zone{}, fmt.Errorf("failed to list zones: %w", err)
	}
	if len(zones) == 0 {
		return model.Zone{}, ErrNoZoneAvailable
	}

	zone := zones[len(zones)-1]
	logrus.Infof("Selected zone: %s (zone selection is not configurable yet)", zone)
	return zone, nil
}

// ListZones returns all zones visible to the account.
func (s *Service) ListZones(ctx context.Context) ([]model.Zone, error) {
	zones, err := s.api.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

// ListRules returns the zone's rules sorted by priority descending,
// with absent priority treated as zero. The sort is stable so equal
// priorities keep the provider's order.
func (s *Service) ListRules(ctx context.Context, zone model.Zone) ([]model.Rule, error) {
	rules, err := s.api.ListRoutingRules(ctx, zone.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].EffectivePriority() > rules[j].EffectivePriority()
	})
	return rules, nil
}

// ListAddresses returns the destination addresses of the zone's account.
func (s *Service) ListAddresses(ctx context.Context, zone model.Zone) ([]model.Address, error) {
	addrs, err := s.api.ListDestinationAddresses(ctx, zone.Account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}
