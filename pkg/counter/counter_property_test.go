//go:build property
// +build property

package counter

import (
	"bytes"
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/afero"
)

// TestCountProperties checks the counting invariants over arbitrary
// content and chunk sizes.
func TestCountProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: the count equals the number of 0x0A bytes in the file,
	// whatever the buffer size.
	properties.Property("count matches newline occurrences", prop.ForAll(
		func(content []byte, bufferSize int) bool {
			memFs := afero.NewMemMapFs()
			if err := afero.WriteFile(memFs, "/f", content, 0644); err != nil {
				return false
			}

			c, err := New(memFs, bufferSize)
			if err != nil {
				return false
			}

			got, err := c.Count(context.Background(), "/f")
			if err != nil {
				return false
			}

			return got == int64(bytes.Count(content, []byte{'\n'}))
		},
		gen.SliceOf(gen.UInt8()),
		gen.IntRange(1, 8192),
	))

	// Property: two counters with different buffer sizes agree on every
	// file.
	properties.Property("buffer size never changes the count", prop.ForAll(
		func(content []byte, sizeA, sizeB int) bool {
			memFs := afero.NewMemMapFs()
			if err := afero.WriteFile(memFs, "/f", content, 0644); err != nil {
				return false
			}

			a, err := New(memFs, sizeA)
			if err != nil {
				return false
			}
			b, err := New(memFs, sizeB)
			if err != nil {
				return false
			}

			countA, errA := a.Count(context.Background(), "/f")
			countB, errB := b.Count(context.Background(), "/f")

			return errA == nil && errB == nil && countA == countB
		},
		gen.SliceOf(gen.UInt8()),
		gen.IntRange(1, 64),
		gen.IntRange(65, 1<<16),
	))

	properties.TestingRun(t)
}
