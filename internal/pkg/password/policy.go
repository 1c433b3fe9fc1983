// FILE: internal/pkg/password/policy.go
package password

import "unicode"

const (
	MinLength = 8
	MaxLength = 100
)

// Violation reports a single failed policy rule. Rule is machine-readable;
// Arguments carries the violated bound for the length rules.
type Violation struct {
	Rule      string `json:"validation"`
	Arguments int    `json:"arguments,omitempty"`
	Message   string `json:"message"`
}

// Validate evaluates every rule and returns all violations. Callers must
// not assume the first entry is the only one.
func Validate(candidate string) []Violation {
	runes := []rune(candidate)

	var hasLower, hasUpper, hasDigit, hasSymbol, hasSpace bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsSpace(r):
			hasSpace = true
		default:
			hasSymbol = true
		}
	}

	var violations []Violation
	if len(runes) < MinLength {
		violations = append(violations, Violation{
			Rule:      "min",
			Arguments: MinLength,
			Message:   "The string should have a minimum length of 8 characters",
		})
	}
	if len(runes) > MaxLength {
		violations = append(violations, Violation{
			Rule:      "max",
			Arguments: MaxLength,
			Message:   "The string should have a maximum length of 100 characters",
		})
	}
	if !hasLower {
		violations = append(violations, Violation{
			Rule:    "lowercase",
			Message: "The string should have a minimum of 1 lowercase letter",
		})
	}
	if !hasUpper {
		violations = append(violations, Violation{
			Rule:    "uppercase",
			Message: "The string should have a minimum of 1 uppercase letter",
		})
	}
	if !hasDigit {
		violations = append(violations, Violation{
			Rule:    "digits",
			Message: "The string should have a minimum of 1 digit",
		})
	}
	if !hasSymbol {
		violations = append(violations, Violation{
			Rule:    "symbols",
			Message: "The string should have a minimum of 1 symbol",
		})
	}
	if hasSpace {
		violations = append(violations, Violation{
			Rule:    "spaces",
			Message: "The string should not have spaces",
		})
	}
	return violations
}
