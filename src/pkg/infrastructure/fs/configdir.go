package fs

import (
	"fmt"

	"github.com/kirsle/configdir"
)

const configFolderName = "wgpuctl"

// ConfigDir returns the user's wgpuctl config directory and ensures it exists.
func ConfigDir() (string, error) {
	dir := configdir.LocalConfig(configFolderName)
	if err := configdir.MakePath(dir); err != nil {
		return "", fmt.Errorf("failed to create config dir %q: %w", dir, err)
	}
	return dir, nil
}
