package common

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrOutOfRange = errors.New("value out of signed byte range")
	ErrMissingKey = errors.New("missing search value")
)

// Value is a single element of the record set.
type Value int8

// Record is the unit persisted by the snapshot backend.
type Record struct {
	Pos   int
	Value Value
}

func (r *Record) String() string {
	return fmt.Sprintf("Record{Pos: %d, Value: %d}", r.Pos, r.Value)
}

// ParseValue parses a decimal signed byte. Surrounding whitespace is ignored.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if n < math.MinInt8 || n > math.MaxInt8 {
		return 0, fmt.Errorf("parse %q: %w", s, ErrOutOfRange)
	}
	return Value(n), nil
}

// ParseKey parses the search key from command arguments.
func ParseKey(args []string) (Value, error) {
	if len(args) == 0 {
		return 0, ErrMissingKey
	}
	return ParseValue(args[0])
}
