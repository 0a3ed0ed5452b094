package headers

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/fs"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
)

// HeaderGlob selects .h, .hpp and friends
const HeaderGlob = "*.h*"

// IncludeDir returns targetDir/include/webgpu
func IncludeDir(targetDir string) string {
	return filepath.Join(targetDir, "include", "webgpu")
}

// Relocate moves every header in the root of targetDir into
// targetDir/include/webgpu and returns the new paths. Existing files with the
// same name are replaced.
func Relocate(targetDir string) (moved []string, err error) {
	if !fs.IsDir(targetDir) {
		return nil, errors.Errorf("target directory %s does not exist", targetDir)
	}

	includeDir := IncludeDir(targetDir)
	if err = fs.EnsureDir(includeDir, fs.PermDirShared); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", includeDir)
	}

	matches, err := filepath.Glob(filepath.Join(targetDir, HeaderGlob))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list headers")
	}

	for _, src := range matches {
		info, statErr := os.Stat(src)
		if statErr != nil {
			return moved, errors.Wrapf(statErr, "failed to stat %s", src)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		dst := filepath.Join(includeDir, filepath.Base(src))
		if err = fs.Move(src, dst); err != nil {
			return moved, err
		}
		print.Verb("moved", src, "to", dst)
		moved = append(moved, dst)
	}
	return moved, nil
}
