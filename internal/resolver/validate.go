package resolver

import "strings"

// IsWellFormedIPv4 reports whether s matches the four-octet dotted-decimal
// grammar with each octet in 0-255. Purely syntactic; no reachability or
// semantic check is made. Leading zeros are accepted, as in the classic
// dotted-quad grammar.
func IsWellFormedIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 {
			return false
		}
		value := 0
		for i := 0; i < len(part); i++ {
			ch := part[i]
			if ch < '0' || ch > '9' {
				return false
			}
			value = value*10 + int(ch-'0')
		}
		if value > 255 {
			return false
		}
	}
	return true
}
