// Package counter implements newline counting over fixed-size buffered
// reads. Files are scanned as raw bytes, so binary and text files are
// counted the same way.
package counter

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

var newline = []byte{'\n'}

// Counter counts newline bytes in files, streaming each file through a
// fixed-size buffer. The buffer is reused across files but never shared
// between goroutines: each worker owns one Counter for its lifetime.
type Counter struct {
	fs  afero.Fs
	buf []byte
}

// New creates a Counter that reads through a buffer of exactly
// bufferSize bytes. bufferSize must be positive.
func New(fs afero.Fs, bufferSize int) (*Counter, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", bufferSize)
	}

	return &Counter{
		fs:  fs,
		buf: make([]byte, bufferSize),
	}, nil
}

// BufferSize returns the configured read chunk size.
func (c *Counter) BufferSize() int {
	return len(c.buf)
}

// Count returns the number of newline bytes (0x0A) in the file at path.
// The final partial chunk is scanned only up to the bytes actually read,
// so the result is identical for any buffer size. A file that vanished
// since discovery reports an error satisfying errors.Is(err,
// fs.ErrNotExist); other I/O failures are propagated as they are, with
// no partial count.
func (c *Counter) Count(ctx context.Context, path string) (int64, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var count int64
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		n, err := f.Read(c.buf)
		if n > 0 {
			count += int64(bytes.Count(c.buf[:n], newline))
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", path, err)
		}
	}
}
