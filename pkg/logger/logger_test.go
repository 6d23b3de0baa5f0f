//go:build unit

package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

func TestWriterLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "[VERBOSE] ")

	logger.Logf("Analyzing project: %s", "App.csproj")
	logger.Logf("done")

	assert.Equal(t, "[VERBOSE] Analyzing project: App.csproj\n[VERBOSE] done\n", buf.String())
}

func TestWriterLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
}

func TestVerboseLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	NewVerboseLogger(&buf).Logf("Resolved target %s", "App.sln")

	assert.Equal(t, "[VERBOSE] Resolved target App.sln\n", buf.String())
}
