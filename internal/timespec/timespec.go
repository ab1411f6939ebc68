// Package timespec parses the duration tokens accepted by the remindme
// command, such as "5m", "2h", "1d" or "1w".
package timespec

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid is returned for any token outside the ^[0-9]+[smhdw]$ grammar.
var ErrInvalid = errors.New("invalid duration")

var tokenRegexp = regexp.MustCompile(`^([0-9]+)([a-zA-Z])$`)

var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
	"w": 604800,
}

// Parse converts a duration token into a time.Duration. The token must be a
// run of decimal digits followed by exactly one unit character from
// s/m/h/d/w (case-insensitive), nothing else.
func Parse(token string) (time.Duration, error) {
	matches := tokenRegexp.FindStringSubmatch(token)
	if len(matches) != 3 {
		return 0, ErrInvalid
	}

	quantity, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		// Digit runs too long for int64 are rejected rather than truncated.
		return 0, ErrInvalid
	}

	multiplier, ok := unitSeconds[strings.ToLower(matches[2])]
	if !ok {
		return 0, ErrInvalid
	}

	// Quantities whose seconds would not fit in a time.Duration are
	// rejected rather than allowed to wrap negative.
	maxSeconds := math.MaxInt64 / int64(time.Second)
	if quantity > maxSeconds/multiplier {
		return 0, ErrInvalid
	}

	return time.Duration(quantity*multiplier) * time.Second, nil
}
