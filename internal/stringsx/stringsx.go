package stringsx

import "strings"

// DefaultIfBlank uses the default value if the provided string is blank.
func DefaultIfBlank(s, defaultValue string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}

	return defaultValue
}
