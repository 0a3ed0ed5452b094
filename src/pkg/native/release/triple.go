// Package release describes a wgpu-native GitHub release and classifies its
// assets by platform triple.
package release

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// SystemType is the operating system an asset was built for
type SystemType string

// ArchType is the CPU architecture an asset was built for
type ArchType string

// BuildType is the build profile of an asset
type BuildType string

const (
	Linux   SystemType = "linux"
	MacOS   SystemType = "macos"
	Windows SystemType = "windows"

	Intel32 ArchType = "i686"
	AMD64   ArchType = "x86_64"
	ARM64   ArchType = "arm64"

	BuildDebug   BuildType = "debug"
	BuildRelease BuildType = "release"
)

var (
	systems = []SystemType{Linux, MacOS, Windows}
	arches  = []ArchType{Intel32, AMD64, ARM64}
	builds  = []BuildType{BuildDebug, BuildRelease}
)

var (
	// ErrPatternMismatch is returned when an asset name does not have the
	// wgpu-{system}-{arch}-{build}.zip shape at all.
	ErrPatternMismatch = errors.New("asset name does not match the release filename pattern")
	// ErrUnknownToken is returned when the shape fits but a component is not
	// one of the known systems, architectures or builds.
	ErrUnknownToken = errors.New("asset name contains an unknown platform token")
)

// matches wgpu-linux-x86_64-release.zip
var matchFilename = regexp.MustCompile(`^wgpu-(?P<system>[a-z0-9]+)-(?P<arch>[a-z0-9_]+)-(?P<build>[a-z]+)\.zip$`)

// Triple identifies one asset variant.
type Triple struct {
	System SystemType
	Arch   ArchType
	Build  BuildType
}

func (t Triple) String() string {
	return fmt.Sprintf("%s-%s-%s", t.System, t.Arch, t.Build)
}

// AllTriples lists every combination of the known systems, architectures and
// builds.
func AllTriples() (triples []Triple) {
	for _, s := range systems {
		for _, a := range arches {
			for _, b := range builds {
				triples = append(triples, Triple{System: s, Arch: a, Build: b})
			}
		}
	}
	return
}

// Filename is the inverse of ParseFilename.
func (t Triple) Filename() string {
	return fmt.Sprintf("wgpu-%s.zip", t)
}

// ParseFilename classifies a release asset name. Names that do not fit the
// pattern, or that name a system, architecture or build outside the known
// sets, are errors: the sets must be extended by hand when upstream adds one.
func ParseFilename(filename string) (Triple, error) {
	match := matchFilename.FindStringSubmatch(filename)
	if match == nil {
		return Triple{}, errors.Wrapf(ErrPatternMismatch,
			"failed to resolve %q; update the filename pattern in ParseFilename", filename)
	}

	groups := make(map[string]string)
	for i, name := range matchFilename.SubexpNames() {
		if name != "" {
			groups[name] = match[i]
		}
	}

	system, ok := lookup(systems, SystemType(groups["system"]))
	if !ok {
		return Triple{}, unknownToken(filename, "system", groups["system"])
	}
	arch, ok := lookup(arches, ArchType(groups["arch"]))
	if !ok {
		return Triple{}, unknownToken(filename, "architecture", groups["arch"])
	}
	build, ok := lookup(builds, BuildType(groups["build"]))
	if !ok {
		return Triple{}, unknownToken(filename, "build", groups["build"])
	}

	return Triple{System: system, Arch: arch, Build: build}, nil
}

func lookup[T comparable](known []T, v T) (T, bool) {
	for _, k := range known {
		if k == v {
			return k, true
		}
	}
	var zero T
	return zero, false
}

func unknownToken(filename, kind, token string) error {
	return errors.Wrapf(ErrUnknownToken,
		"failed to resolve %q: unknown %s %q; add it to the known values in ParseFilename", filename, kind, token)
}
