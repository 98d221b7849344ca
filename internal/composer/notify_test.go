package composer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_AutoHides(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)
	defer n.Stop()

	n.Success("Post published successfully")
	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, NotifySuccess, cur.Kind)

	assert.Eventually(t, func() bool { return n.Current() == nil }, time.Second, 5*time.Millisecond)
}

func TestNotifier_Dismiss(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Stop()

	n.Error("rate limited")
	n.Dismiss()
	assert.Nil(t, n.Current())

	// dismissing while idle is harmless
	n.Dismiss()
	assert.Nil(t, n.Current())
}

func TestNotifier_ReplaceKeepsNewest(t *testing.T) {
	n := NewNotifier(200 * time.Millisecond)
	defer n.Stop()

	first := n.Error("first")
	time.Sleep(120 * time.Millisecond)
	second := n.Success("second")

	assert.Greater(t, second.ID, first.ID)

	// past the first deadline the newer notification must still be shown
	time.Sleep(120 * time.Millisecond)
	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "second", cur.Message)

	assert.Eventually(t, func() bool { return n.Current() == nil }, time.Second, 5*time.Millisecond)
}

func TestNotifier_StaleExpireIgnored(t *testing.T) {
	n := NewNotifier(0)

	first := n.Error("first")
	n.Success("second")
	n.expire(first.ID)

	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "second", cur.Message)
}
