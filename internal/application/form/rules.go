// Package form evaluates transient, unvalidated form drafts against
// declarative field rules before any store mutation happens.
package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule holds validation constraints for a single form field.
// Evaluation order: Required, min/max length, Pattern, Custom. Checks after
// Required are skipped when an optional field is empty.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    func(value any) string // returns a message, or "" when valid
}

// Rules maps field names to their validation rules.
type Rules map[string]Rule

// Values maps field names to submitted draft values. A value is either a
// string or a []string (multi-select fields).
type Values map[string]any

const requiredMessage = "This field is required"

// Field evaluates a single value against a rule.
// PRE: value is a string or a []string
// POST: Returns "" when valid, a user-facing message otherwise
// INVARIANT: Pure; no side effects, deterministic on input
func Field(value any, rule Rule) string {
	items, isList := value.([]string)
	text, _ := value.(string)

	empty := false
	if isList {
		empty = len(items) == 0
	} else {
		empty = strings.TrimSpace(text) == ""
	}

	if rule.Required && empty {
		return requiredMessage
	}
	// Optional and empty: remaining checks do not apply.
	if empty {
		return ""
	}

	// Character counts are rune counts, matching the user-facing wording.
	if rule.MinLength > 0 {
		if isList && len(items) < rule.MinLength {
			return fmt.Sprintf("Minimum %d items required", rule.MinLength)
		}
		if !isList && utf8.RuneCountInString(text) < rule.MinLength {
			return fmt.Sprintf("Minimum %d characters required", rule.MinLength)
		}
	}
	if rule.MaxLength > 0 {
		if isList && len(items) > rule.MaxLength {
			return fmt.Sprintf("Maximum %d items allowed", rule.MaxLength)
		}
		if !isList && utf8.RuneCountInString(text) > rule.MaxLength {
			return fmt.Sprintf("Maximum %d characters allowed", rule.MaxLength)
		}
	}

	if rule.Pattern != nil && !isList && !rule.Pattern.MatchString(text) {
		return "Invalid format"
	}

	if rule.Custom != nil {
		return rule.Custom(value)
	}
	return ""
}

// Form evaluates every field that has a declared rule.
// POST: Result keys are exactly the fields that failed; empty map means all passed
func Form(values Values, rules Rules) map[string]string {
	errors := make(map[string]string)
	for field, rule := range rules {
		if msg := Field(values[field], rule); msg != "" {
			errors[field] = msg
		}
	}
	return errors
}
