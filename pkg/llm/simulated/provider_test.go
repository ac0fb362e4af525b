package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsCannedCompletionAfterDelay(t *testing.T) {
	p := NewSimulatedProvider(10 * time.Millisecond)

	start := time.Now()
	out, err := p.Generate(context.Background(), "anything")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Contains(t, out, "# Completed Study Notes")
}

func TestGenerateRespectsContextCancellation(t *testing.T) {
	p := NewSimulatedProvider(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, "anything")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDelayDefaultsWhenNonPositive(t *testing.T) {
	p := NewSimulatedProvider(0)
	assert.Equal(t, 2*time.Second, p.Delay)
}
