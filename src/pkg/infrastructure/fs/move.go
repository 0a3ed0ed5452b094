package fs

import (
	"os"

	"github.com/otiai10/copy"
	"github.com/pkg/errors"
)

// Move renames src to dst, replacing dst if it is a file. When the rename
// fails (e.g. the two paths sit on different devices) the file is copied and
// the source removed.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copy.Copy(src, dst); err != nil {
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	if err := os.Remove(src); err != nil {
		return errors.Wrapf(err, "failed to remove %s after copy", src)
	}
	return nil
}
