package handler

import (
	"fmt"
	"regexp"
	"strings"

	"employee-api/internal/employee/models"
	dErrors "employee-api/pkg/domain-errors"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

const (
	msgInvalidUUID  = "Invalid UUID format"
	msgEmptySearch  = "Search string cannot be empty"
	msgNotBlank     = "must not be blank"
	msgNotNull      = "must not be null"
	msgMinimumValue = "must be greater than or equal to %d"
)

func validateID(id string) error {
	if !uuidPattern.MatchString(id) {
		return dErrors.New(dErrors.CodeBadRequest, msgInvalidUUID)
	}
	return nil
}

func validateSearch(fragment string) error {
	if strings.TrimSpace(fragment) == "" {
		return dErrors.New(dErrors.CodeBadRequest, msgEmptySearch)
	}
	return nil
}

// constraint returns a violation message, or "" when satisfied.
type constraint func(in models.Input) string

type fieldRules struct {
	field       string
	constraints []constraint
}

// inputRules lists the create constraints in the order violations are reported.
var inputRules = []fieldRules{
	{field: "name", constraints: []constraint{notBlank(func(in models.Input) string { return in.Name })}},
	{field: "salary", constraints: []constraint{
		required(func(in models.Input) *int { return in.Salary }),
		minimum(func(in models.Input) *int { return in.Salary }, 1),
	}},
	{field: "age", constraints: []constraint{
		required(func(in models.Input) *int { return in.Age }),
		minimum(func(in models.Input) *int { return in.Age }, 16),
	}},
	{field: "title", constraints: []constraint{notBlank(func(in models.Input) string { return in.Title })}},
}

func notBlank(get func(models.Input) string) constraint {
	return func(in models.Input) string {
		if strings.TrimSpace(get(in)) == "" {
			return msgNotBlank
		}
		return ""
	}
}

func required(get func(models.Input) *int) constraint {
	return func(in models.Input) string {
		if get(in) == nil {
			return msgNotNull
		}
		return ""
	}
}

// minimum passes absent values; required reports those.
func minimum(get func(models.Input) *int, n int) constraint {
	return func(in models.Input) string {
		if v := get(in); v != nil && *v < n {
			return fmt.Sprintf(msgMinimumValue, n)
		}
		return ""
	}
}

// validateInput runs every rule and reports all violations at once as
// "<field>: <message>" joined by ", ".
func validateInput(in models.Input) error {
	var violations []string
	for _, rules := range inputRules {
		for _, check := range rules.constraints {
			if msg := check(in); msg != "" {
				violations = append(violations, rules.field+": "+msg)
			}
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, strings.Join(violations, ", "))
}
