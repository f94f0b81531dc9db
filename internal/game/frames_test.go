package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramesRunInOrder(t *testing.T) {
	f := NewFrames()
	var got []string
	_, err := f.Schedule("sim", func() { got = append(got, "sim") })
	require.NoError(t, err)
	_, err = f.Schedule("joystick", func() { got = append(got, "joystick") })
	require.NoError(t, err)

	f.Run()
	f.Run()
	assert.Equal(t, []string{"sim", "joystick", "sim", "joystick"}, got)
	assert.Equal(t, []string{"sim", "joystick"}, f.Names())
}

func TestFramesCancel(t *testing.T) {
	f := NewFrames()
	n := 0
	var cancelSelf func()
	cancelSelf, _ = f.Schedule("once", func() {
		n++
		cancelSelf()
	})
	other := 0
	cancelOther, _ := f.Schedule("other", func() { other++ })

	f.Run()
	f.Run()
	assert.Equal(t, 1, n, "cancel from inside a callback takes effect next frame")
	assert.Equal(t, 2, other)

	cancelOther()
	f.Run()
	assert.Equal(t, 2, other)
	assert.Empty(t, f.Names())
}

func TestFramesTeardown(t *testing.T) {
	f := NewFrames()
	var order []string
	ran := 0
	_, _ = f.Schedule("loop", func() { ran++ })
	f.OnTeardown(func() { order = append(order, "input") })
	f.OnTeardown(func() { order = append(order, "audio") })

	f.Run()
	f.Teardown()
	f.Teardown()
	f.Run()
	assert.Equal(t, 1, ran)
	assert.Equal(t, []string{"input", "audio"}, order)
	assert.True(t, f.TornDown())

	cancel, err := f.Schedule("late", func() { ran++ })
	assert.ErrorIs(t, err, ErrTornDown)
	cancel()
	f.Run()
	assert.Equal(t, 1, ran)

	late := false
	f.OnTeardown(func() { late = true })
	assert.True(t, late, "hooks added after teardown run immediately")
}

func TestFramesTeardownFromCallback(t *testing.T) {
	f := NewFrames()
	second := 0
	_, _ = f.Schedule("quit", func() { f.Teardown() })
	_, _ = f.Schedule("after", func() { second++ })
	f.Run()
	assert.Zero(t, second)
	assert.True(t, f.TornDown())
}
