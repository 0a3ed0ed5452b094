package fs

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Expand resolves a leading ~ and returns a cleaned path.
func Expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}

func Exists(path string) bool {
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil {
		panic(err)
	}
	return true
}
