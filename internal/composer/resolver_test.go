package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Select(t *testing.T) {
	r := NewResolver(testProfiles(), testAccounts())

	assert.Equal(t, []int64{10, 11}, r.Select(1))
	assert.Equal(t, int64(1), r.ActiveProfile())
	assert.Len(t, r.Visible(), 2)

	assert.Equal(t, []int64{20}, r.Select(2))
	_, ok := r.Lookup(10)
	assert.False(t, ok, "accounts of the previous profile are no longer visible")

	assert.Empty(t, r.Select(3))
	assert.Empty(t, r.Visible())

	assert.Empty(t, r.Select(404))
}

func TestComposer_SelectProfileReplacesSelection(t *testing.T) {
	backend := new(MockBackend)
	c := loadedComposer(t, backend)

	assert.Equal(t, []int64{10, 11}, c.Draft().Selected)

	// deselect one and add a stray id; switching profile must discard both changes
	c.ToggleAccount(11)
	c.ToggleAccount(99)
	assert.Equal(t, []int64{10, 99}, c.Draft().Selected)

	c.SelectProfile(2)
	assert.Equal(t, []int64{20}, c.Draft().Selected)

	c.SelectProfile(1)
	assert.ElementsMatch(t, []int64{10, 11}, c.Draft().Selected)

	c.SelectProfile(3)
	assert.Empty(t, c.Draft().Selected)
	assert.Nil(t, c.Notification(), "an empty profile is not an error")
}

func TestComposer_ToggleAccount(t *testing.T) {
	backend := new(MockBackend)
	c := loadedComposer(t, backend)

	assert.False(t, c.ToggleAccount(10))
	assert.Equal(t, []int64{11}, c.Draft().Selected)

	assert.True(t, c.ToggleAccount(10))
	assert.Equal(t, []int64{11, 10}, c.Draft().Selected)
}
