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

// DeleteOutcomeKind classifies how a deletion request resolved.
type DeleteOutcomeKind int

const (
	// DeleteDone means a rule was deleted.
	DeleteDone DeleteOutcomeKind = iota
	// DeleteNotFound means no rule matched the fragment; nothing was
	// deleted. This is a reportable outcome, not an error.
	DeleteNotFound
	// DeleteAmbiguous means several rules matched the fragment; nothing
	// was deleted. Also a reportable outcome.
	DeleteAmbiguous
)

// DeleteOutcome is the result of a deletion request. Candidates holds
// all known rules for not-found outcomes and the conflicting matches for
// ambiguous ones.
type DeleteOutcome struct {
	Kind       DeleteOutcomeKind
	Fragment   string
	RuleID     string
	Rule       *model.Rule
	Candidates []model.Rule
}

// DeleteRule resolves a user-supplied identifier fragment against the
// zone's rules and deletes the unique match. When the rule listing
// returns no result, the fragment is assumed to be a literal rule ID and
// deletion is attempted directly (degraded mode). Zero or multiple
// matches never delete anything.
func (s *Service) DeleteRule(ctx context.Context, zone model.Zone, fragment string) (*DeleteOutcome, error) {
	ruleID := fragment
	var resolved *model.Rule

	rules, err := s.api.ListRoutingRules(ctx, zone.ID)
	switch {
	case errors.Is(err, cloudflare.ErrNoResult):
		logrus.Warn("Fetching rules failed. Assuming the identifier is an existing rule ID.")
	case err != nil:
		return nil, fmt.Errorf("failed to list rules: %w", err)
	default:
		matches := matchRules(rules, fragment)
		switch len(matches) {
		case 0:
			return &DeleteOutcome{Kind: DeleteNotFound, Fragment: fragment, Candidates: rules}, nil
		case 1:
			logrus.Infof("Found rule: %s", matches[0])
			resolved = &matches[0]
			ruleID = matches[0].ID
		default:
			return &DeleteOutcome{Kind: DeleteAmbiguous, Fragment: fragment, Candidates: matches}, nil
		}
	}

	res, err := s.api.DeleteRoutingRule(ctx, zone.ID, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("provider refused to delete rule %s: %s", ruleID, formatErrors(res.Errors))
	}

	return &DeleteOutcome{Kind: DeleteDone, Fragment: fragment, RuleID: ruleID, Rule: resolved}, nil
}

// kindaMatches is the fuzzy identifier test: a case-insensitive
// substring check of the fragment against the candidate.
func kindaMatches(fragment, candidate string) bool {
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(fragment))
}

// matchRules selects the rules whose ID or literal matcher values
// fuzzy-match the fragment. Catch-all matchers never match; there is no
// value to match against.
func matchRules(rules []model.Rule, fragment string) []model.Rule {
	var matched []model.Rule
	for _, rule := range rules {
		if ruleMatches(rule, fragment) {
			matched = append(matched, rule)
		}
	}
	return matched
}

func ruleMatches(rule model.Rule, fragment string) bool {
	if kindaMatches(fragment, rule.ID) {
		return true
	}
	for _, m := range rule.Matchers {
		if m.Type == model.MatcherLiteral && kindaMatches(fragment, m.Value) {
			return true
		}
	}
	return false
}

func formatErrors(errs []cloudflare.ResponseError) string {
	if len(errs) == 0 {
		return "no error details"
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("%d %s", e.Code, e.Message))
	}
	return strings.Join(parts, "; ")
}
