package progress

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Peter-Juhasz/line-counter/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// mockLogger collects log lines for assertions.
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

// syncBuffer makes bytes.Buffer safe for the render goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func newSyncBuffer() *syncBuffer {
	return &syncBuffer{}
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestReporterRendersStatus(t *testing.T) {
	buf := newSyncBuffer()

	r := New(Config{
		Writer:      buf,
		RefreshRate: 5 * time.Millisecond,
		Width:       80,
		NoColor:     true,
	}, &mockLogger{})

	var polled atomic.Int64
	r.Start(func() Status {
		polled.Add(1)
		return Status{
			Processed: 45,
			Total:     100,
			Lines:     1234,
			Failures:  2,
		}
	})

	time.Sleep(50 * time.Millisecond)
	r.Stop()

	out := buf.String()
	assert.Contains(t, out, "45/100 files")
	assert.Contains(t, out, "1,234 lines")
	assert.Contains(t, out, "2 failed")
	assert.Contains(t, out, "45%")
	assert.Greater(t, polled.Load(), int64(0))
}

func TestReporterStopIsIdempotent(t *testing.T) {
	r := New(Config{
		Writer:      newSyncBuffer(),
		RefreshRate: time.Millisecond,
		Width:       40,
	}, &mockLogger{})

	r.Start(func() Status { return Status{} })

	r.Stop()
	r.Stop()
}

func TestReporterStopWithoutStart(t *testing.T) {
	r := New(Config{Writer: newSyncBuffer()}, &mockLogger{})
	r.Stop()
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		contains []string
	}{
		{
			name: "halfway",
			status: Status{
				Processed: 50,
				Total:     100,
				Lines:     2500,
			},
			contains: []string{"50%", "50/100 files", "2,500 lines"},
		},
		{
			name: "complete",
			status: Status{
				Processed: 10,
				Total:     10,
				Lines:     42,
			},
			contains: []string{"100%", "10/10 files"},
		},
		{
			name:     "empty batch has no percentage blowup",
			status:   Status{},
			contains: []string{"0%", "0/0 files", "0 lines"},
		},
		{
			name: "failures only shown when present",
			status: Status{
				Processed: 3,
				Total:     4,
				Lines:     9,
				Failures:  1,
			},
			contains: []string{"1 failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := formatLine(tt.status, 80, true)
			for _, want := range tt.contains {
				assert.Contains(t, line, want)
			}
			assert.Contains(t, line, "[")
			assert.Contains(t, line, "]")
		})
	}
}

func TestFormatLineWithoutFailures(t *testing.T) {
	line := formatLine(Status{Processed: 1, Total: 2, Lines: 3}, 80, true)
	assert.NotContains(t, line, "failed")
}

func TestFormatLineNarrowWidth(t *testing.T) {
	// The bar keeps a minimum width even when the terminal is narrow.
	line := formatLine(Status{Processed: 5, Total: 10, Lines: 100}, 20, true)
	assert.Contains(t, line, "=")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
