package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"email-routing-cli/internal/cloudflare"
	"email-routing-cli/internal/model"
)

const localPartAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const localPartLength = 16

// CreateParams are the user-supplied parts of a rule creation. Nil
// matcher/action means "resolve one for me".
type CreateParams struct {
	Matcher  *model.Matcher
	Action   *model.Action
	Name     string
	Priority *uint
}

// CreateRule fills in the missing pieces of the request (action from the
// account's destination addresses, matcher from the zone's routing
// domain plus a random local part) and creates the rule. Every created
// rule has exactly one action and one matcher.
func (s *Service) CreateRule(ctx context.Context, zone model.Zone, params CreateParams) (*model.Rule, error) {
	action, err := s.resolveAction(ctx, zone, params.Action)
	if err != nil {
		return nil, err
	}

	matcher, err := s.resolveMatcher(ctx, zone, params.Matcher)
	if err != nil {
		return nil, err
	}

	req := model.CreateRuleRequest{
		Actions:  []model.Action{action},
		Matchers: []model.Matcher{matcher},
		Name:     params.Name,
		Priority: params.Priority,
	}

	rule, err := s.api.CreateRoutingRule(ctx, zone.ID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// resolveAction uses the supplied action, or synthesizes a forward to
// the last destination address of the zone's account.
func (s *Service) resolveAction(ctx context.Context, zone model.Zone, supplied *model.Action) (model.Action, error) {
	if supplied != nil {
		return *supplied, nil
	}

	addrs, err := s.api.ListDestinationAddresses(ctx, zone.Account.ID)
	if err != nil {
		return model.Action{}, fmt.Errorf("failed to list addresses: %w", err)
	}
	if len(addrs) == 0 {
		return model.Action{}, ErrNoDestinationAddress
	}

	// Same pop-from-end policy as zone selection.
	addr := addrs[len(addrs)-1]
	if addr.Email == "" {
		return model.Action{}, fmt.Errorf("address %s has no email: %w", addr.ID, ErrNoDestinationAddress)
	}

	return model.Action{Type: model.ActionForward, Value: []string{addr.Email}}, nil
}

// resolveMatcher completes the supplied matcher, or generates a random
// address on the zone's routing domain when none was given. A literal
// containing "@" is used verbatim; one without is treated as a bare
// local part and completed with the zone's domain.
func (s *Service) resolveMatcher(ctx context.Context, zone model.Zone, supplied *model.Matcher) (model.Matcher, error) {
	if supplied != nil {
		if supplied.Type == model.MatcherAll || strings.Contains(supplied.Value, "@") {
			return *supplied, nil
		}

		domain, err := s.lookupDomain(ctx, zone)
		if err != nil {
			return model.Matcher{}, err
		}
		return model.Matcher{
			Type:  model.MatcherLiteral,
			Value: supplied.Value + "@" + domain,
		}, nil
	}

	domain, err := s.lookupDomain(ctx, zone)
	if err != nil {
		return model.Matcher{}, err
	}

	local := s.randomLocalPart()
	logrus.Infof("No matcher specified. Generated random username: %s", local)

	return model.Matcher{
		Type:  model.MatcherLiteral,
		Value: local + "@" + domain,
	}, nil
}

// lookupDomain reads the zone's routing domain from its email routing
// settings.
func (s *Service) lookupDomain(ctx context.Context, zone model.Zone) (string, error) {
	logrus.Info("No domain specified. Fetching it from the zone...")

	settings, err := s.api.GetEmailRoutingSettings(ctx, zone.ID)
	if err != nil {
		if errors.Is(err, cloudflare.ErrNoResult) {
			return "", fmt.Errorf("%w for zone %s: %v", ErrRoutingSettingsUnavailable, zone.ID, err)
		}
		return "", fmt.Errorf("failed to get email routing settings: %w", err)
	}

	logrus.Infof("Found domain: %s", settings.Name)
	return settings.Name, nil
}

// randomLocalPart returns 16 characters drawn uniformly, with
// replacement, from the lowercase-alphanumeric alphabet.
func (s *Service) randomLocalPart() string {
	buf := make([]byte, localPartLength)
	for i := range buf {
		buf[i] = localPartAlphabet[s.rng.Intn(len(localPartAlphabet))]
	}
	return string(buf)
}
