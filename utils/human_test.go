package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHuman(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{512, "512"},
		{1024, "1024"},
		{2048, "2K"},
		{1536, "1.5K"},
		{10240, "10K"},
		{102400, "100K"},
		{1048576, "1024K"},
		{2097152, "2M"},
		{104857600, "100M"},
		{1 << 30, "1024M"},
		{1 << 31, "2G"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Human(c.in), "Human(%d)", c.in)
	}
}
