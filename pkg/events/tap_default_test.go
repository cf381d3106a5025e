//go:build !darwin

package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStubAdapterReportsUnsupported(t *testing.T) {
	handle, err := NewAdapter(Options{}).Open(KeyboardMask, func(Event) Verdict { return Pass })
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
	require.Nil(t, handle)
}
