package users

import (
	"fmt"
	"regexp"
)

// Validator checks user input. Implementations carry the rules; callers
// carry nothing.
type Validator interface {
	ValidateUsername(username string) error
	ValidateEmail(email string) error
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RuleValidator applies illustrative shape checks. It is not a real
// security boundary.
type RuleValidator struct {
	MinUsername int
	MaxUsername int
}

// NewRuleValidator returns a validator with the default length bounds.
func NewRuleValidator() *RuleValidator {
	return &RuleValidator{MinUsername: 3, MaxUsername: 32}
}

func (v *RuleValidator) ValidateUsername(username string) error {
	if len(username) < v.MinUsername || len(username) > v.MaxUsername {
		return fmt.Errorf("username %q must be between %d and %d characters", username, v.MinUsername, v.MaxUsername)
	}
	return nil
}

func (v *RuleValidator) ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not well formed", email)
	}
	return nil
}
