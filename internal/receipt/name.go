package receipt

import "strings"

// servedByPrefixes are the droid-style name prefixes. The first hex
// digit of the session id picks one.
var servedByPrefixes = []string{
	"R2", "C3", "BB", "K2", "IG", "BD", "QT", "AP", "RX", "TC", "GNK", "WED",
}

// ServedBy derives a cosmetic droid-style label from a session id.
// Deterministic and collision-tolerant; not an identifier.
func ServedBy(sessionID string) string {
	var hex strings.Builder
	for _, c := range strings.ToUpper(sessionID) {
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') {
			hex.WriteRune(c)
		}
	}

	chars := hex.String()
	for len(chars) < 8 {
		chars += "0"
	}

	prefix := servedByPrefixes[hexDigit(chars[0])%len(servedByPrefixes)]
	return prefix + "-" + chars[1:4]
}

func hexDigit(c byte) int {
	if c >= 'A' {
		return int(c-'A') + 10
	}
	return int(c - '0')
}
