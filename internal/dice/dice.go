// Package dice rolls dice described in standard dice notation (2d6, 1d20).
package dice

import (
	"errors"
	"math/rand"
	"regexp"
	"strconv"
)

const (
	maxCount = 100
	maxSides = 1000
)

// ErrInvalidNotation is returned when the input is not NdM with N in
// [1,100] and M in [2,1000].
var ErrInvalidNotation = errors.New("invalid dice notation")

var notationRegexp = regexp.MustCompile(`^([0-9]+)[dD]([0-9]+)$`)

// Result holds the outcome of a roll.
type Result struct {
	Notation string
	Rolls    []int
	Total    int
}

// Parse validates dice notation and returns the die count and side count.
func Parse(notation string) (count, sides int, err error) {
	matches := notationRegexp.FindStringSubmatch(notation)
	if len(matches) != 3 {
		return 0, 0, ErrInvalidNotation
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil || count < 1 || count > maxCount {
		return 0, 0, ErrInvalidNotation
	}

	sides, err = strconv.Atoi(matches[2])
	if err != nil || sides < 2 || sides > maxSides {
		return 0, 0, ErrInvalidNotation
	}

	return count, sides, nil
}

// Roll parses the notation and rolls with the given source.
func Roll(rng *rand.Rand, notation string) (*Result, error) {
	count, sides, err := Parse(notation)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Notation: notation,
		Rolls:    make([]int, count),
	}
	for i := range result.Rolls {
		roll := rng.Intn(sides) + 1
		result.Rolls[i] = roll
		result.Total += roll
	}

	return result, nil
}
