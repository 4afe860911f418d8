package observers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_TrackedLine(t *testing.T) {
	var buf bytes.Buffer
	obs := Writer(&buf)()

	err := obs.Observe(context.Background(), &domain.Breakpoint{
		Elapsed:   3 * time.Second,
		Result:    7,
		Progress:  0.5,
		Remaining: 3.0,
		Tracked:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "elapsed=3s progress=0.50 remaining=3.00s result=7\n", buf.String())
}

func TestWriter_UntrackedLine(t *testing.T) {
	var buf bytes.Buffer
	obs := Writer(&buf)()

	err := obs.Observe(context.Background(), &domain.Breakpoint{
		Elapsed: time.Second,
		Result:  "chunk",
	})
	require.NoError(t, err)
	assert.Equal(t, "elapsed=1s result=chunk\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestWriter_WriteErrorAborts(t *testing.T) {
	obs := Writer(failingWriter{})()
	err := obs.Observe(context.Background(), &domain.Breakpoint{})
	assert.ErrorIs(t, err, assert.AnError)
}
