// Package layout decides where each release asset is extracted to.
package layout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/fs"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/prompt"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/release"
)

// DefaultRoot is the output directory used when --output is not given
const DefaultRoot = "WebGPU"

// ConfirmAnswer is the only answer that allows an existing output to be removed
const ConfirmAnswer = "Y"

// TargetDir returns root/system/arch-build
func TargetDir(root string, triple release.Triple) string {
	return filepath.Join(root, string(triple.System), string(triple.Arch)+"-"+string(triple.Build))
}

// Ensure creates the target directory of triple, including its parents.
func Ensure(root string, triple release.Triple) (string, error) {
	dir := TargetDir(root, triple)
	if err := fs.EnsureDir(dir, fs.PermDirShared); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	return dir, nil
}

// PrepareRoot clears an existing output root. Unless force is set the user is
// asked first and anything but an exact "Y" leaves the tree alone, in which
// case proceed is false.
func PrepareRoot(root string, force bool, confirmer prompt.Confirmer) (proceed bool, err error) {
	if !fs.Exists(root) {
		return true, nil
	}

	if !force {
		var answer string
		answer, err = confirmer.Confirm("Output path '" + root + "' already exists. Delete it? (Y/n)")
		if err != nil {
			return false, err
		}
		if answer != ConfirmAnswer {
			print.Verb("received", strings.TrimSpace(answer), "- keeping", root)
			return false, nil
		}
	}

	print.Info("Removing", root)
	if err = os.RemoveAll(root); err != nil {
		return false, errors.Wrapf(err, "failed to remove %s", root)
	}
	return true, nil
}
