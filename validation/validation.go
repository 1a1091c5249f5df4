// Package validation applies declarative field rules to decoded JSON
// payloads. Rules run in declaration order and each field contributes at
// most one violation, so callers can either report the first message or
// return the whole list as details.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the JSON primitive kind a rule expects.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Rule describes the constraints for a single field. Zero values mean the
// check is skipped. A field counts as missing when it is absent, null, or
// the empty string.
type Rule struct {
	Field     string
	Optional  bool
	Type      Kind
	MinLength int
	MaxLength int
	Enum      []string
	Min       *float64
	Int       bool
	Pattern   *regexp.Regexp
}

// Violation is one failed rule, tied to its field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MinOf is a convenience for Rule.Min literals.
func MinOf(v float64) *float64 { return &v }

// Apply checks payload against rules in order. Optional fields that are
// missing skip every further check; required missing fields yield a single
// "is required" violation and nothing else for that field.
func Apply(payload map[string]interface{}, rules []Rule) []Violation {
	var violations []Violation
	for _, rule := range rules {
		if v := checkField(payload, rule); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

// First returns the first violation's message, or "" when the list is empty.
func First(violations []Violation) string {
	if len(violations) == 0 {
		return ""
	}
	return violations[0].Message
}

func checkField(payload map[string]interface{}, rule Rule) *Violation {
	val, present := payload[rule.Field]
	missing := !present || val == nil || val == ""

	if missing {
		if rule.Optional {
			return nil
		}
		return fail(rule, "%s is required")
	}

	if rule.Type != "" && kindOf(val) != rule.Type {
		return fail(rule, "%s must be "+string(rule.Type))
	}

	if s, ok := val.(string); ok {
		if rule.MinLength > 0 && len(s) < rule.MinLength {
			return fail(rule, fmt.Sprintf("%%s must have at least %d characters", rule.MinLength))
		}
		if rule.MaxLength > 0 && len(s) > rule.MaxLength {
			return fail(rule, fmt.Sprintf("%%s must have at most %d characters", rule.MaxLength))
		}
	}

	if len(rule.Enum) > 0 && !enumContains(rule.Enum, val) {
		return fail(rule, "%s must be one of "+strings.Join(rule.Enum, ", "))
	}

	if n, ok := val.(float64); ok {
		if rule.Min != nil && n < *rule.Min {
			return fail(rule, "%s must be >= "+formatNumber(*rule.Min))
		}
	}

	if rule.Int {
		n, ok := val.(float64)
		if !ok || n != float64(int64(n)) {
			return fail(rule, "%s must be an integer")
		}
	}

	if rule.Pattern != nil {
		if s, ok := val.(string); ok && !rule.Pattern.MatchString(s) {
			return fail(rule, "%s format is invalid")
		}
	}

	return nil
}

func fail(rule Rule, format string) *Violation {
	return &Violation{Field: rule.Field, Message: fmt.Sprintf(format, rule.Field)}
}

// kindOf maps a decoded JSON value to its primitive kind. encoding/json
// decodes every number into float64.
func kindOf(val interface{}) Kind {
	switch val.(type) {
	case string:
		return KindString
	case float64:
		return KindNumber
	case bool:
		return KindBoolean
	default:
		return ""
	}
}

func enumContains(enum []string, val interface{}) bool {
	s, ok := val.(string)
	if !ok {
		return false
	}
	for _, e := range enum {
		if s == e {
			return true
		}
	}
	return false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
