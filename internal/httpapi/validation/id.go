package validation

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrInvalidID signals a malformed :id path parameter.
var ErrInvalidID = errors.New("invalid ID format")

var idPattern = regexp.MustCompile(`^[0-9]+$`)

// ParseResourceID parses an :id path parameter. Only unsigned decimal digit
// strings that parse to a positive value are accepted; "1a", "1.0" and "-1"
// all fail.
func ParseResourceID(raw string) (int64, error) {
	if !idPattern.MatchString(raw) {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
