package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCell indicates a cell literal that is not of the form "row,col".
var ErrBadCell = errors.New("grid: cell must be written as row,col")

// ParseCell reads a "row,col" literal such as "3,7". Surrounding spaces and
// parentheses are ignored, so Cell.String output parses back.
func ParseCell(s string) (Cell, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")
	rs, cs, ok := strings.Cut(t, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	return Cell{Row: r, Col: c}, nil
}
