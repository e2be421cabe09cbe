package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

const maxNameLength = 120

type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateLeadForm checks a raw form submission and returns the typed
// input or per-field errors. Pure function: no side effects, no
// normalization beyond whitespace trimming.
func ValidateLeadForm(form url.Values) (CaptureLeadInput, []ValidationError) {
	var errs []ValidationError

	input := CaptureLeadInput{
		Name:  strings.TrimSpace(form.Get("name")),
		Email: strings.TrimSpace(form.Get("email")),
	}

	if input.Email == "" {
		errs = append(errs, ValidationError{"email", "invalid_email", "a valid email address is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "invalid_email", "a valid email address is required"})
	}

	if len(input.Name) > maxNameLength {
		errs = append(errs, ValidationError{"name", "name_too_long", fmt.Sprintf("must not exceed %d characters", maxNameLength)})
	}

	if isTruthy(form.Get("consent")) {
		input.Consent = true
	} else {
		errs = append(errs, ValidationError{"consent", "consent_required", "consent is required"})
	}

	if len(errs) > 0 {
		return CaptureLeadInput{}, errs
	}
	return input, nil
}

// isTruthy matches what browsers send for a checked checkbox plus the
// values API clients commonly use.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
