package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spaghettifunk/age/engine/platform"
)

const (
	// RequiredGLMajor and RequiredGLMinor are the minimum GL version.
	RequiredGLMajor = 2
	RequiredGLMinor = 1
	// MinTextureSize is the smallest GL_MAX_TEXTURE_SIZE the renderer accepts.
	MinTextureSize = 1024
)

type GLVersion struct {
	Major int
	Minor int
}

func (v GLVersion) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseGLVersion reads the leading "major.minor" of a GL_VERSION string such
// as "2.1 Mesa 23.0.4" or "OpenGL ES 3.2 NVIDIA".
func ParseGLVersion(s string) (GLVersion, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "OpenGL ES-CM ")
	v = strings.TrimPrefix(v, "OpenGL ES-CL ")
	v = strings.TrimPrefix(v, "OpenGL ES ")
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}

	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return GLVersion{}, fmt.Errorf("malformed GL version %q", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return GLVersion{}, fmt.Errorf("malformed GL version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return GLVersion{}, fmt.Errorf("malformed GL version %q: %w", s, err)
	}
	return GLVersion{Major: major, Minor: minor}, nil
}

// Capabilities is the validated hardware report produced by bootstrap.
type Capabilities struct {
	Version        GLVersion
	VersionString  string
	MaxTextureSize int32
	ImageFormats   platform.ImageFormat
	AudioDevices   []string
}
