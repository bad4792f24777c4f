package config

import (
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidBackends  = []string{"git", "go-git"}
	ValidHostTypes = []string{"github", "bitbucket"}
)

// validate checks enum fields of cfg. source names the file for error messages.
func validate(cfg *Config, source string) error {
	if err := validateEnum(cfg.Backend, "backend", ValidBackends); err != nil {
		return fmt.Errorf("%w in %s", err, source)
	}
	for host, kind := range cfg.Hosts {
		if err := validateEnum(kind, fmt.Sprintf("hosts.%q", host), ValidHostTypes); err != nil {
			return fmt.Errorf("%w in %s", err, source)
		}
		if kind == "" {
			return fmt.Errorf("empty hosts.%q in %s: must be %s", host, source, formatOptions(ValidHostTypes))
		}
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
