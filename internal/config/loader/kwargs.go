package loader

import (
	"fmt"
	"strings"
)

// ParseKwargs parses raw KEY=VALUE strings into a map. Each entry must
// contain exactly one "=": "a=" and "=b" are accepted (empty value or key),
// "ab" and "a=b=c" are rejected. A later duplicate key silently overwrites
// an earlier one.
func ParseKwargs(raw []string) (map[string]string, error) {
	kwargs := make(map[string]string, len(raw))

	for _, rawKwarg := range raw {
		parts := strings.Split(rawKwarg, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"%w: %q must be in KEY=VALUE format",
				ErrMalformedKwarg, rawKwarg,
			)
		}
		kwargs[parts[0]] = parts[1]
	}

	return kwargs, nil
}
