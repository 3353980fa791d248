package audio

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

type Format uint8

const (
	FormatWAV Format = iota
	FormatOpus
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatOpus:
		return "opus"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// LoaderPolicy decides whether a sound is decoded up front or streamed.
type LoaderPolicy uint8

const (
	LoaderPolicyInMemory LoaderPolicy = iota
	LoaderPolicyDynamic
)

func (p LoaderPolicy) String() string {
	switch p {
	case LoaderPolicyInMemory:
		return "in_memory"
	case LoaderPolicyDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// SoundFile is one row of the sound index:
//
//	category,id,path,format,loader_policy
type SoundFile struct {
	Category     int
	ID           int
	Path         string
	Format       Format
	LoaderPolicy LoaderPolicy
}

const soundFileFields = 5

func (s *SoundFile) Fill(fields []string) error {
	if len(fields) != soundFileFields {
		return fmt.Errorf("sound file entry has %d fields, expected %d", len(fields), soundFileFields)
	}

	category, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return fmt.Errorf("invalid category %q: %w", fields[0], err)
	}
	id, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", fields[1], err)
	}
	path := strings.TrimSpace(fields[2])
	if path == "" {
		return fmt.Errorf("sound %d/%d has an empty path", category, id)
	}

	var format Format
	switch strings.ToLower(strings.TrimSpace(fields[3])) {
	case "wav":
		format = FormatWAV
	case "opus":
		format = FormatOpus
	default:
		return fmt.Errorf("unknown sound format %q", fields[3])
	}

	var policy LoaderPolicy
	switch strings.ToLower(strings.TrimSpace(fields[4])) {
	case "in_memory":
		policy = LoaderPolicyInMemory
	case "dynamic":
		policy = LoaderPolicyDynamic
	default:
		return fmt.Errorf("unknown loader policy %q", fields[4])
	}

	*s = SoundFile{
		Category:     category,
		ID:           id,
		Path:         path,
		Format:       format,
		LoaderPolicy: policy,
	}
	return nil
}

// IsSoundFile reports whether path has the extension of a supported format.
func IsSoundFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".opus":
		return true
	default:
		return false
	}
}
