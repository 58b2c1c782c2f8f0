package pages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogDecisionRoundTrip(t *testing.T) {
	d := newDialogDecision()

	d.arm(false)
	accept, armed := d.consume()
	require.True(t, armed, "armed decision should be consumable")
	assert.False(t, accept)

	d.markHandled("Delete user 4?")
	msg, handled := d.await(time.Second)
	require.True(t, handled)
	assert.Equal(t, "Delete user 4?", msg)
}

func TestDialogDecisionUnarmedConsume(t *testing.T) {
	d := newDialogDecision()
	_, armed := d.consume()
	assert.False(t, armed, "consume without arm must report unarmed")
}

func TestDialogDecisionTimeoutDrainsState(t *testing.T) {
	d := newDialogDecision()

	d.arm(true)
	_, handled := d.await(10 * time.Millisecond)
	require.False(t, handled, "no dialog fired, await must time out")

	// The timed-out arm must not leak into the next action
	_, armed := d.consume()
	assert.False(t, armed, "stale decision should have been drained")

	// A fresh cycle on the same instance works cleanly
	d.arm(true)
	accept, armed := d.consume()
	require.True(t, armed)
	assert.True(t, accept)
	d.markHandled("Delete user 5?")
	msg, handled := d.await(time.Second)
	require.True(t, handled)
	assert.Equal(t, "Delete user 5?", msg)
}

func TestDialogDecisionLateHandledDrained(t *testing.T) {
	d := newDialogDecision()

	d.arm(true)
	// Dialog consumed the decision but reported back too late
	_, armed := d.consume()
	require.True(t, armed)
	d.markHandled("late")

	// A stale handled signal left over from a timed-out action must not
	// satisfy the next await
	_, handled := d.await(10 * time.Millisecond)
	assert.True(t, handled, "pre-timeout handled is still a valid completion")

	_, handled = d.await(10 * time.Millisecond)
	assert.False(t, handled, "handled signal must not be reusable")
}
