// Package validation contains form-level validation rules.
package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"mentorhub/internal/models"
)

const (
	maxUsernameLen = 30
	maxEmailLen    = 75
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var forbiddenUsernames = map[string]struct{}{
	"admin":         {},
	"administrator": {},
	"root":          {},
	"moderator":     {},
	"support":       {},
	"webmaster":     {},
	"api":           {},
	"articles":      {},
	"drafts":        {},
	"signup":        {},
	"login":         {},
	"logout":        {},
	"settings":      {},
}

// SignupInput carries the raw sign-up form fields.
type SignupInput struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Role            string `json:"role" form:"role"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// Directory provides the existing-account lookups used by uniqueness rules.
// Both lookups are case-insensitive. The pre-checks here are advisory; the
// database unique constraint remains the authoritative guard.
type Directory interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// signupRule validates one aspect of one field. It returns an error message,
// or "" when the value passes.
type signupRule struct {
	field string
	check func(ctx context.Context, in SignupInput, dir Directory) (string, error)
}

// signupRules is the fixed, ordered rule list for the sign-up form. A field
// whose required rule fails skips its remaining rules; fields never block
// each other, and the cross-field password check in ValidateSignup runs
// regardless of per-field outcomes.
var signupRules = []signupRule{
	{"username", func(_ context.Context, in SignupInput, _ Directory) (string, error) {
		if len(in.Username) > maxUsernameLen {
			return fmt.Sprintf("Ensure this value has at most %d characters.", maxUsernameLen), nil
		}
		return "", nil
	}},
	{"username", func(_ context.Context, in SignupInput, _ Directory) (string, error) {
		if strings.ContainsAny(in.Username, "@+-") {
			return "Enter a valid username.", nil
		}
		return "", nil
	}},
	{"username", func(_ context.Context, in SignupInput, _ Directory) (string, error) {
		if _, forbidden := forbiddenUsernames[strings.ToLower(in.Username)]; forbidden {
			return "This username is not allowed.", nil
		}
		return "", nil
	}},
	{"username", func(ctx context.Context, in SignupInput, dir Directory) (string, error) {
		exists, err := dir.UsernameExists(ctx, in.Username)
		if err != nil {
			return "", err
		}
		if exists {
			return "User with this Username already exists.", nil
		}
		return "", nil
	}},
	{"email", func(_ context.Context, in SignupInput, _ Directory) (string, error) {
		if len(in.Email) > maxEmailLen {
			return fmt.Sprintf("Ensure this value has at most %d characters.", maxEmailLen), nil
		}
		return "", nil
	}},
	{"email", func(_ context.Context, in SignupInput, _ Directory) (string, error) {
		if !emailRegex.MatchString(in.Email) {
			return "Enter a valid email address.", nil
		}
		return "", nil
	}},
	{"email", func(ctx context.Context, in SignupInput, dir Directory) (string, error) {
		exists, err := dir.EmailExists(ctx, in.Email)
		if err != nil {
			return "", err
		}
		if exists {
			return "User with this Email already exists.", nil
		}
		return "", nil
	}},
	{"role", func(_ context.Context, in SignupInput, _ Directory) (string, error) {
		if !models.ValidRole(models.Role(in.Role)) {
			return "Select a valid role.", nil
		}
		return "", nil
	}},
}

// requiredFields maps each field name to an accessor, checked before the
// field's rule list runs.
var requiredFields = []struct {
	field string
	value func(in SignupInput) string
}{
	{"username", func(in SignupInput) string { return in.Username }},
	{"email", func(in SignupInput) string { return in.Email }},
	{"role", func(in SignupInput) string { return in.Role }},
	{"password", func(in SignupInput) string { return in.Password }},
	{"confirm_password", func(in SignupInput) string { return in.ConfirmPassword }},
}

// ValidateSignup runs every rule and accumulates failures into a field-keyed
// error set. The returned error is non-nil only for infrastructure failures
// (directory lookups), never for validation outcomes.
func ValidateSignup(ctx context.Context, in SignupInput, dir Directory) (models.FieldErrors, error) {
	fieldErrs := models.FieldErrors{}
	missing := map[string]bool{}

	for _, req := range requiredFields {
		if req.value(in) == "" {
			fieldErrs.Add(req.field, "This field is required.")
			missing[req.field] = true
		}
	}

	for _, rule := range signupRules {
		if missing[rule.field] {
			continue
		}
		msg, err := rule.check(ctx, in, dir)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			fieldErrs.Add(rule.field, msg)
		}
	}

	// Cross-field check, always last, regardless of per-field outcomes.
	if in.Password != "" && in.Password != in.ConfirmPassword {
		fieldErrs.Add("password", "Passwords don't match")
	}

	return fieldErrs, nil
}
