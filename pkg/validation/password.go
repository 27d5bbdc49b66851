// Package validation holds input checks that sit outside struct binding tags,
// currently the configurable password policy.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// PasswordPolicy mirrors the deployment's account hardening settings.
type PasswordPolicy struct {
	MinLength          int
	RequireDigit       bool
	RequireLowercase   bool
	RequireUppercase   bool
	RequireNonAlphanum bool
}

// Check returns a human-readable message for every rule the password
// violates, or nil when the password satisfies the policy.
func (p PasswordPolicy) Check(password string) []string {
	var problems []string

	if len(password) < p.MinLength {
		problems = append(problems, fmt.Sprintf("Password must be at least %d characters long.", p.MinLength))
	}

	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}

	if p.RequireDigit && !hasDigit {
		problems = append(problems, "Password must contain at least one digit.")
	}
	if p.RequireLowercase && !hasLower {
		problems = append(problems, "Password must contain at least one lowercase letter.")
	}
	if p.RequireUppercase && !hasUpper {
		problems = append(problems, "Password must contain at least one uppercase letter.")
	}
	if p.RequireNonAlphanum && !hasSymbol {
		problems = append(problems, "Password must contain at least one non-alphanumeric character.")
	}

	return problems
}

// CheckJoined is Check with the messages collapsed into one failure string.
func (p PasswordPolicy) CheckJoined(password string) string {
	problems := p.Check(password)
	if len(problems) == 0 {
		return ""
	}
	return strings.Join(problems, " ")
}
