package point

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformedLine indicates that a line is not three comma-separated signed integers.
var ErrMalformedLine = errors.New("point: malformed coordinate line")

// ParseLine parses a single "x,y,z" line into a Point with the given id.
func ParseLine(id int, line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, errors.Wrapf(ErrMalformedLine, "want 3 coordinates, got %d in %q", len(fields), line)
	}

	var coords [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, errors.Wrapf(errors.Mark(err, ErrMalformedLine), "coordinate %d of %q", i, line)
		}
		coords[i] = v
	}

	return New(id, coords[0], coords[1], coords[2]), nil
}

// Parse reads one point per non-blank line from r. IDs are assigned in
// reading order starting at 0. The first malformed line aborts the read and
// is reported with its 1-based line number.
func Parse(r io.Reader) ([]Point, error) {
	var (
		pts    []Point
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := ParseLine(len(pts), line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "point: read input")
	}

	return pts, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Point, error) {
	return Parse(strings.NewReader(s))
}
