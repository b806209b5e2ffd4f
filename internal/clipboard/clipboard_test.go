package clipboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	var m Memory
	assert.Empty(t, m.Text())

	assert.NoError(t, m.WriteText(context.Background(), "=== COTIZACIÓN ==="))
	assert.Equal(t, "=== COTIZACIÓN ===", m.Text())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.WriteText(ctx, "other"), context.Canceled)
	assert.Equal(t, "=== COTIZACIÓN ===", m.Text())
}

func TestDiscard(t *testing.T) {
	assert.ErrorIs(t, Discard{}.WriteText(context.Background(), "x"), ErrUnsupported)
}

func TestSystem_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewSystem().WriteText(ctx, "x"), context.Canceled)
}

func TestWriterImplementations(t *testing.T) {
	var _ Writer = System{}
	var _ Writer = Discard{}
	var _ Writer = &Memory{}
}
