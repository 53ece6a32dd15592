package algoutil

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntOrDefault(t *testing.T) {
	assert.Equal(t, 12, IntOrDefault("12", 3))
	assert.Equal(t, 3, IntOrDefault("", 3))
	assert.Equal(t, 3, IntOrDefault("1x", 3))
}

func TestQueryRange(t *testing.T) {
	cases := []struct {
		query         string
		offset, count int
	}{
		{"", 0, 20},
		{"offset=5&count=10", 5, 10},
		{"offset=-1&count=0", 0, 20},
		{"count=1000", 0, 100},
		{"offset=abc", 0, 20},
	}

	for _, c := range cases {
		q, err := url.ParseQuery(c.query)
		assert.NoError(t, err)
		offset, count := QueryRange(q, 20, 100)
		assert.Equal(t, c.offset, offset, c.query)
		assert.Equal(t, c.count, count, c.query)
	}
}
