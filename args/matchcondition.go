// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"strings"

	"github.com/pkg/errors"
)

// Transform is applied to the request value before a match condition is
// evaluated.
type Transform string

const (
	TransformLowercase Transform = "Lowercase"
	TransformUppercase Transform = "Uppercase"
)

// Transforms is the static list of known transforms.
var Transforms = []string{string(TransformLowercase), string(TransformUppercase)}

const (
	operatorAny = "Any"
	negateToken = "not"
)

// MatchCondition is one parsed match condition of a WAF custom rule or an
// AFD rule.
type MatchCondition struct {
	Variable   string      `json:"matchVariable"`
	Operator   string      `json:"operator"`
	Selector   string      `json:"selector,omitempty"`
	Values     []string    `json:"matchValues,omitempty"`
	Transforms []Transform `json:"transforms,omitempty"`
	Negate     bool        `json:"negateCondition"`
}

// ParseMatchCondition parses
//
//	VARIABLE[:SELECTOR] [not] OPERATOR [VALUE[,VALUE...]] [TRANSFORM[,TRANSFORM...]]
//
// The sub-token after OPERATOR is the value list, except for the Any operator
// which takes none. Variable and operator names are left for the service to
// check.
func ParseMatchCondition(name, raw string) (MatchCondition, error) {
	fields, err := splitFields(raw)
	if err != nil {
		return MatchCondition{}, malformed(name, raw, "%v", err)
	}
	if len(fields) == 0 {
		return MatchCondition{}, malformed(name, raw, "match variable is required")
	}

	var mc MatchCondition
	variable, selector, hasSelector := strings.Cut(fields[0], ":")
	if variable == "" {
		return MatchCondition{}, malformed(name, raw, "match variable is required")
	}
	if hasSelector && selector == "" {
		return MatchCondition{}, malformed(name, raw, "empty selector after %q", variable+":")
	}
	mc.Variable, mc.Selector = variable, selector
	rest := fields[1:]

	if len(rest) > 0 && strings.EqualFold(rest[0], negateToken) {
		mc.Negate = true
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return MatchCondition{}, malformed(name, raw, "operator is required")
	}
	mc.Operator = rest[0]
	rest = rest[1:]

	if !strings.EqualFold(mc.Operator, operatorAny) {
		if len(rest) == 0 {
			return MatchCondition{}, malformed(name, raw, "operator %s requires match values", mc.Operator)
		}
		mc.Values = strings.Split(rest[0], ",")
		rest = rest[1:]
	}

	if len(rest) > 1 {
		return MatchCondition{}, malformed(name, raw, "unexpected sub-fields %q", rest[1:])
	}
	if len(rest) == 1 {
		if mc.Transforms, err = parseTransforms(rest[0]); err != nil {
			return MatchCondition{}, malformed(name, raw, "%v", err)
		}
	}
	return mc, nil
}

// ParseMatchConditions parses repeated match condition tokens in order.
func ParseMatchConditions(name string, raw []string) ([]MatchCondition, error) {
	conditions := make([]MatchCondition, 0, len(raw))
	for _, r := range raw {
		mc, err := ParseMatchCondition(name, r)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, mc)
	}
	return conditions, nil
}

func parseTransforms(raw string) ([]Transform, error) {
	var transforms []Transform
	seen := map[Transform]bool{}
	for _, t := range strings.Split(raw, ",") {
		c, ok := Canonical(Transforms, t)
		if !ok {
			return nil, errors.Errorf("unknown transform %q, expected one of %s", t, strings.Join(Transforms, ", "))
		}
		if seen[Transform(c)] {
			continue
		}
		seen[Transform(c)] = true
		transforms = append(transforms, Transform(c))
	}
	return transforms, nil
}
