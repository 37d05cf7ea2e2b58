// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"sort"
	"strings"
)

const (
	overrideSeparator = ";"
	stateSeparator    = "="
)

// RuleOverride is one managed rule group override. Overrides maps rule id to
// the requested state or action.
type RuleOverride struct {
	RuleGroup string
	Overrides map[string]string
	order     []string
}

// NewRuleOverride returns an empty override for group.
func NewRuleOverride(group string) RuleOverride {
	return RuleOverride{RuleGroup: group, Overrides: map[string]string{}}
}

// Set records state for ruleID. A rule id that is already present keeps its
// position and takes the new state.
func (r *RuleOverride) Set(ruleID, state string) {
	if r.Overrides == nil {
		r.Overrides = map[string]string{}
	}
	if _, ok := r.Overrides[ruleID]; !ok {
		r.order = append(r.order, ruleID)
	}
	r.Overrides[ruleID] = state
}

// RuleIDs returns the overridden rule ids in first-seen order. Ids added to
// Overrides directly come last, sorted.
func (r RuleOverride) RuleIDs() []string {
	ids := append([]string(nil), r.order...)
	if len(ids) == len(r.Overrides) {
		return ids
	}
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	var extra []string
	for id := range r.Overrides {
		if !known[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

// ParseRuleOverride parses
//
//	<rule-group>[;<rule-id>=<state>]*
//
// A rule id repeated within one token keeps the last state given. States
// known to OverrideStates are stored in their canonical spelling, unknown
// ones are kept as given for ValidateRuleOverride to report.
func ParseRuleOverride(name, raw string) (RuleOverride, error) {
	segments := strings.Split(raw, overrideSeparator)
	group := strings.TrimSpace(segments[0])
	if group == "" {
		return RuleOverride{}, malformed(name, raw, "rule group is required")
	}
	if strings.Contains(group, stateSeparator) {
		return RuleOverride{}, malformed(name, raw, "rule group %q must come before the first %q", group, overrideSeparator)
	}

	override := NewRuleOverride(group)
	for _, segment := range segments[1:] {
		segment = strings.TrimSpace(segment)
		ruleID, state, ok := strings.Cut(segment, stateSeparator)
		if !ok {
			return RuleOverride{}, malformed(name, raw, "override %q is missing %q", segment, stateSeparator)
		}
		ruleID, state = strings.TrimSpace(ruleID), strings.TrimSpace(state)
		if ruleID == "" {
			return RuleOverride{}, malformed(name, raw, "override %q has an empty rule id", segment)
		}
		if state == "" {
			return RuleOverride{}, malformed(name, raw, "override %q has an empty state", segment)
		}
		if canonical, ok := Canonical(OverrideStates, state); ok {
			state = canonical
		}
		override.Set(ruleID, state)
	}
	return override, nil
}

// ParseRuleOverrides parses repeated tokens in order without merging them.
func ParseRuleOverrides(name string, raw []string) ([]RuleOverride, error) {
	overrides := make([]RuleOverride, 0, len(raw))
	for _, r := range raw {
		o, err := ParseRuleOverride(name, r)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// MergeRuleOverrides folds overrides that share a rule group into one, in
// input order. Later states win.
func MergeRuleOverrides(overrides []RuleOverride) []RuleOverride {
	var merged []RuleOverride
	index := map[string]int{}
	for _, o := range overrides {
		i, ok := index[o.RuleGroup]
		if !ok {
			index[o.RuleGroup] = len(merged)
			merged = append(merged, NewRuleOverride(o.RuleGroup))
			i = len(merged) - 1
		}
		for _, id := range o.RuleIDs() {
			merged[i].Set(id, o.Overrides[id])
		}
	}
	return merged
}
