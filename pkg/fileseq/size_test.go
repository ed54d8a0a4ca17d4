package fileseq

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeLabel(t *testing.T) {
	cases := []struct {
		In     int64
		Expect string
	}{
		{In: 0, Expect: ""},
		{In: -1, Expect: ""},
		{In: 1, Expect: "1.0B"},
		{In: 512, Expect: "512.0B"},
		{In: 1024, Expect: "1.0KiB"},
		{In: 1536, Expect: "1.5KiB"},
		{In: 1024 * 1024, Expect: "1.0MiB"},
		{In: 5 * 1024 * 1024 * 1024, Expect: "5.0GiB"},
		{In: 3 * (1 << 50), Expect: "3.0PiB"},
		{In: 1 << 60, Expect: "1.0EiB"},
		{In: math.MaxInt64, Expect: "8.0EiB"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.In), func(t *testing.T) {
			assert.Equal(t, c.Expect, SizeLabel(c.In))
		})
	}
}
