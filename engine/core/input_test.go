package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStateTransitions(t *testing.T) {
	s := NewInputState()

	assert.True(t, s.ProcessKey(KEY_SPACE, true))
	assert.False(t, s.ProcessKey(KEY_SPACE, true), "repeated press is not a change")
	assert.True(t, s.IsKeyDown(KEY_SPACE))
	assert.False(t, s.WasKeyDown(KEY_SPACE))

	s.Update()
	assert.True(t, s.WasKeyDown(KEY_SPACE))

	assert.True(t, s.ProcessKey(KEY_SPACE, false))
	assert.False(t, s.IsKeyDown(KEY_SPACE))
}

func TestInputStateIgnoresOutOfRangeKeys(t *testing.T) {
	s := NewInputState()
	assert.False(t, s.ProcessKey(KEYS_MAX_KEYS, true))
	assert.False(t, s.IsKeyDown(KEYS_MAX_KEYS))
}
