package vars

import "strings"

// ParseBool accepts the usual spellings of yes and no.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

func StrToBool(str string) bool {
	v, _ := ParseBool(str)
	return v
}
