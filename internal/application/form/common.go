package form

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns shared by the common rule bundles.
var (
	EmailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhonePattern    = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
	PricePattern    = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	CapacityPattern = regexp.MustCompile(`^\d+$`)
)

// phoneSeparators strips spaces, dashes and parentheses before phone matching.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// RequiredRule marks a field as mandatory with no further constraints.
func RequiredRule() Rule {
	return Rule{Required: true}
}

// NameRule bounds person and program names.
func NameRule() Rule {
	return Rule{Required: true, MinLength: 2, MaxLength: 50}
}

// DescriptionRule bounds free-text descriptions.
func DescriptionRule() Rule {
	return Rule{Required: true, MinLength: 10, MaxLength: 500}
}

// EmailRule validates email-shaped input.
func EmailRule() Rule {
	return Rule{
		Required: true,
		Pattern:  EmailPattern,
		Custom: func(value any) string {
			text, ok := value.(string)
			if !ok || !EmailPattern.MatchString(text) {
				return "Please enter a valid email address"
			}
			return ""
		},
	}
}

// PhoneRule validates phone-shaped input after separator stripping.
func PhoneRule() Rule {
	return Rule{
		Required: true,
		Custom: func(value any) string {
			text, ok := value.(string)
			if !ok || !PhonePattern.MatchString(phoneSeparators.Replace(text)) {
				return "Please enter a valid phone number"
			}
			return ""
		},
	}
}

// PriceRule accepts a decimal with at most two fractional digits, greater than zero.
func PriceRule() Rule {
	return Rule{
		Required: true,
		Pattern:  PricePattern,
		Custom: func(value any) string {
			text, _ := value.(string)
			num, err := strconv.ParseFloat(text, 64)
			if err != nil || num <= 0 {
				return "Please enter a valid price greater than 0"
			}
			return ""
		},
	}
}

// CapacityRule accepts a positive integer.
func CapacityRule() Rule {
	return Rule{
		Required: true,
		Pattern:  CapacityPattern,
		Custom: func(value any) string {
			text, _ := value.(string)
			num, err := strconv.Atoi(text)
			if err != nil || num <= 0 {
				return "Please enter a valid capacity greater than 0"
			}
			return ""
		},
	}
}

// SportRules is the rule set for the add-sport form.
func SportRules() Rules {
	return Rules{
		"name":        NameRule(),
		"description": DescriptionRule(),
		"instructor":  {Required: true, MinLength: 2, MaxLength: 100},
		"schedule":    {Required: true, MinLength: 5, MaxLength: 200},
		"price":       PriceRule(),
		"capacity":    CapacityRule(),
	}
}

// MemberRules is the rule set for the add-member form.
func MemberRules() Rules {
	return Rules{
		"firstName": NameRule(),
		"lastName":  NameRule(),
		"email":     EmailRule(),
		"phone":     PhoneRule(),
	}
}

// SubscriptionRules is the rule set for the add-subscription form.
func SubscriptionRules() Rules {
	return Rules{
		"memberId": RequiredRule(),
		"sportIds": {Required: true, MinLength: 1},
	}
}
