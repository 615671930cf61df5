// Package utils provides small parsing helpers shared by the hook packages.
package utils

import "strings"

// ParseCommaSeparated splits a comma-separated setting such as a list of
// tool names into trimmed, non-empty values. Order and case are preserved.
//
// Examples:
//   - "Bash" -> ["Bash"]
//   - "Bash, Shell" -> ["Bash", "Shell"]
//   - "Bash,,Shell," -> ["Bash", "Shell"]
//   - "" -> []
func ParseCommaSeparated(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' })

	result := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
