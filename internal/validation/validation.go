// Package validation holds the pure field-level checks shared by the usecases.
// Every check is side-effect free and reports failures as domain invalid-request
// errors, so callers can return them unwrapped.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taskboard/api/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks the address against the local@domain.tld pattern.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return domain.InvalidRequest("Invalid email format")
	}
	return nil
}

// RequiredText checks that value is non-empty after trimming and within maxLen.
func RequiredText(value, field string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return domain.InvalidRequest(fmt.Sprintf("%s is required", field))
	}
	if len(value) > maxLen {
		return domain.InvalidRequest(fmt.Sprintf("%s must be at most %d characters", field, maxLen))
	}
	return nil
}

// OptionalText checks length only; empty values are allowed.
func OptionalText(value, field string, maxLen int) error {
	if len(value) > maxLen {
		return domain.InvalidRequest(fmt.Sprintf("%s must be at most %d characters", field, maxLen))
	}
	return nil
}

// Status checks membership in the closed task status set.
func Status(status domain.Status) error {
	if !status.Valid() {
		return domain.InvalidRequest(fmt.Sprintf(
			"Invalid task status. Must be one of: %s", statusList()))
	}
	return nil
}

func statusList() string {
	parts := make([]string, len(domain.Statuses))
	for i, s := range domain.Statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
