package algoutil

import (
	"net/url"
	"strconv"
)

// IntOrDefault parses s, falling back to d when s is not an integer.
func IntOrDefault(s string, d int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return d
	}

	return i
}

// QueryRange reads the offset and count query parameters. Negative or
// missing values take the defaults, count is capped at max.
func QueryRange(q url.Values, count, max int) (int, int) {
	offset := IntOrDefault(q.Get("offset"), 0)
	if offset < 0 {
		offset = 0
	}

	n := IntOrDefault(q.Get("count"), count)
	if n <= 0 {
		n = count
	}
	if n > max {
		n = max
	}
	return offset, n
}
