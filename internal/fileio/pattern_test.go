package fileio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbePattern(t *testing.T) {
	t.Parallel()

	buf := ProbePattern(100)
	require.Len(t, buf, 100)

	assert.Equal(t, []byte{9, 81, 'A', 'q', '0'}, buf[:5])
	assert.Equal(t, byte(5), buf[5])
	assert.Equal(t, byte(99), buf[99])
}

func TestProbePattern_Truncated(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{9, 81, 'A'}, ProbePattern(3))
}

func TestRampPattern(t *testing.T) {
	t.Parallel()

	buf := RampPattern(300)
	require.Len(t, buf, 300)

	assert.Equal(t, byte(0), buf[0])
	assert.Equal(t, byte(255), buf[255])
	assert.Equal(t, byte(0), buf[256])
	assert.Equal(t, byte(43), buf[299])
}

func TestXORPattern(t *testing.T) {
	t.Parallel()

	buf := XORPattern(4096)
	require.Len(t, buf, 4096)

	assert.Equal(t, byte(0xBA), buf[0])
	assert.Equal(t, byte(0xBB), buf[1])
	assert.Equal(t, byte(0x00), buf[0xBA])
	assert.Equal(t, buf[0:256], buf[256:512])
}

func TestPatterns_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, XORPattern(1000), XORPattern(1000))
	assert.Equal(t, RampPattern(100), RampPattern(100))
	assert.Empty(t, RampPattern(-1))
}
