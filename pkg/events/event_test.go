package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "KeyDown", KindKeyDown.String())
	assert.Equal(t, "ScrollWheel", KindScrollWheel.String())
	assert.Equal(t, "OtherMouseDragged", KindOtherMouseDragged.String())
	assert.Equal(t, "EventType(99)", Kind(99).String())
	assert.Equal(t, "EventType(0)", KindNull.String())
}

func TestMaskOfSetsQuartzBits(t *testing.T) {
	assert.Equal(t, Mask(1<<10|1<<11), KeyboardMask)
	assert.True(t, MouseMask.Contains(KindScrollWheel))
	assert.True(t, MouseMask.Contains(KindOtherMouseDragged))
	assert.False(t, MouseMask.Contains(KindKeyDown))
	assert.False(t, KeyboardMask.Contains(KindMouseMoved))
}

func TestMaskAlwaysContainsTapNotifications(t *testing.T) {
	m := MaskOf(KindTapDisabledByTimeout, KindTapDisabledByUserInput)
	assert.Zero(t, m)
	assert.True(t, m.Contains(KindTapDisabledByTimeout))
	assert.True(t, KeyboardMask.Contains(KindTapDisabledByUserInput))
}

func TestFlagsHas(t *testing.T) {
	f := FlagShift | FlagCommand
	assert.True(t, f.Has(FlagShift))
	assert.True(t, f.Has(FlagShift|FlagCommand))
	assert.False(t, f.Has(FlagControl))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "drop", Drop.String())
}
