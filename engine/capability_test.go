package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		want GLVersion
	}{
		{"2.1", GLVersion{2, 1}},
		{"2.1 Mesa 23.0.4", GLVersion{2, 1}},
		{"4.6.0 NVIDIA 535.54.03", GLVersion{4, 6}},
		{"OpenGL ES 3.2 V@415.0", GLVersion{3, 2}},
		{"  3.3 (Core Profile)", GLVersion{3, 3}},
	}
	for _, tt := range tests {
		got, err := ParseGLVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "2", "x.y", "two.one Mesa"} {
		_, err := ParseGLVersion(bad)
		assert.Error(t, err, bad)
	}
}

func TestGLVersionAtLeast(t *testing.T) {
	assert.True(t, GLVersion{2, 1}.AtLeast(2, 1))
	assert.True(t, GLVersion{2, 2}.AtLeast(2, 1))
	assert.True(t, GLVersion{3, 0}.AtLeast(2, 1))
	assert.False(t, GLVersion{2, 0}.AtLeast(2, 1))
	assert.False(t, GLVersion{1, 5}.AtLeast(2, 1))
	assert.Equal(t, "2.1", GLVersion{2, 1}.String())
}
