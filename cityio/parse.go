package cityio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdelivery/city"
)

// MaxCities is the largest number of cities read from one input.
const MaxCities = 50

// terminator ends the input before MaxCities is reached.
const terminator = "0"

// Sentinel errors for input parsing.
var (
	// ErrMalformedLine indicates a line with the wrong shape.
	ErrMalformedLine = errors.New("cityio: malformed line")
	// ErrTruncated indicates the input ended inside a city description.
	ErrTruncated = errors.New("cityio: unexpected end of input")
)

// Instance is one validated city description.
type Instance struct {
	East, North int
	Sites       []city.Site
}

// City builds the city described by in.
func (in Instance) City() (*city.City, error) {
	return city.NewCity(in.East, in.North, in.Sites)
}

// lineReader yields the fields of non-blank lines with their line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() ([]string, bool) {
	for lr.sc.Scan() {
		lr.line++
		if fields := strings.Fields(lr.sc.Text()); len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

func (lr *lineReader) errorf(err error) error {
	return fmt.Errorf("cityio: line %d: %w", lr.line, err)
}

// Parse reads up to MaxCities city descriptions from r and validates every
// one before returning. Reading stops at a line holding a single 0, after
// MaxCities cities, or at end of input between two cities. Blank lines are
// ignored.
//
// The first invalid value aborts the whole parse; no instances are returned
// alongside an error.
func Parse(r io.Reader) ([]Instance, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	var out []Instance

	for len(out) < MaxCities {
		fields, ok := lr.next()
		if !ok {
			break
		}
		if len(fields) == 1 && fields[0] == terminator {
			break
		}

		in, err := parseInstance(lr, fields)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}

	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("cityio: read: %w", err)
	}
	return out, nil
}

func parseInstance(lr *lineReader, header []string) (Instance, error) {
	hv, err := ints(header)
	if err != nil {
		return Instance{}, lr.errorf(err)
	}
	east, north, k := hv[0], hv[1], hv[2]
	if err := city.ValidateBounds(east, north); err != nil {
		return Instance{}, lr.errorf(err)
	}
	if err := city.ValidateCount(k); err != nil {
		return Instance{}, lr.errorf(err)
	}

	in := Instance{East: east, North: north, Sites: make([]city.Site, 0, k)}
	for i := 0; i < k; i++ {
		fields, ok := lr.next()
		if !ok {
			return Instance{}, fmt.Errorf("%w: got %d of %d pizzerias", ErrTruncated, i, k)
		}
		v, err := ints(fields)
		if err != nil {
			return Instance{}, lr.errorf(err)
		}
		x, y, c := v[0], v[1], v[2]
		if err := checkCoordinate(x, east); err != nil {
			return Instance{}, lr.errorf(err)
		}
		if err := checkCoordinate(y, north); err != nil {
			return Instance{}, lr.errorf(err)
		}
		if c < 0 {
			return Instance{}, lr.errorf(fmt.Errorf("%w = %d, must not be negative", city.ErrInvalidCapacity, c))
		}
		in.Sites = append(in.Sites, city.Site{Origin: city.Block{X: x, Y: y}, Capacity: c})
	}
	return in, nil
}

func checkCoordinate(v, limit int) error {
	if v < 1 || v > limit {
		return fmt.Errorf("%w = %d, must be positive and at most %d", city.ErrInvalidCoordinate, v, limit)
	}
	return nil
}

// ints parses exactly three integer fields.
func ints(fields []string) ([3]int, error) {
	var out [3]int
	if len(fields) != len(out) {
		return out, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedLine, len(out), len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return out, fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, f)
		}
		out[i] = v
	}
	return out, nil
}
