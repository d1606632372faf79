package task

import "regexp"

var timeRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5]?[0-9])$`)

// NormalizeTime validates an H:M or HH:MM time and returns it as HH:MM.
func NormalizeTime(raw string) (string, error) {
	m := timeRegex.FindStringSubmatch(raw)
	if m == nil {
		return "", ErrInvalidTime
	}
	return pad2(m[1]) + ":" + pad2(m[2]), nil
}
