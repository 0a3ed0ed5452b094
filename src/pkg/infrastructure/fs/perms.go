package fs

import "os"

const (
	PermDirShared  os.FileMode = 0o755
	PermFileShared os.FileMode = 0o644
)
