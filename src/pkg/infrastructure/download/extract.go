package download

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/fs"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
)

// UnzipBytes extracts every entry of an in-memory zip archive into dst,
// keeping the relative paths stored in the archive. dst must already exist.
// It returns the paths of the files written.
func UnzipBytes(data []byte, dst string) (files []string, err error) {
	if !fs.IsDir(dst) {
		return nil, errors.Errorf("extraction target %s is not a directory", dst)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open zip archive")
	}

	for _, header := range reader.File {
		if header.Name == "" {
			continue
		}

		var target string
		target, err = entryTarget(dst, header.Name)
		if err != nil {
			return files, err
		}

		if header.FileInfo().IsDir() {
			if err = fs.EnsureDir(target, fs.PermDirShared); err != nil {
				return files, errors.Wrap(err, "failed to create dir for target")
			}
			continue
		}

		if err = fs.EnsureDirForFile(target, fs.PermDirShared); err != nil {
			return files, errors.Wrap(err, "failed to create target dir for file")
		}

		if err = extractFile(header, target); err != nil {
			return files, err
		}
		print.Verb("extracted", header.Name)
		files = append(files, target)
	}
	return files, nil
}

// entryTarget joins name onto dst and refuses names that would land outside it.
func entryTarget(dst, name string) (string, error) {
	target := filepath.Join(dst, filepath.FromSlash(name))
	rel, err := filepath.Rel(dst, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("archive entry %q escapes the extraction directory", name)
	}
	return target, nil
}

func extractFile(header *zip.File, target string) (err error) {
	archivedFile, err := header.Open()
	if err != nil {
		return errors.Wrapf(err, "failed to open archive entry %s", header.Name)
	}
	defer archivedFile.Close()

	mode := header.Mode().Perm()
	if mode == 0 {
		mode = fs.PermFileShared
	}

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrap(err, "failed to open extract target file")
	}

	if _, err = io.Copy(file, archivedFile); err != nil {
		_ = file.Close()
		return errors.Wrap(err, "failed to copy archive file to destination")
	}
	if err = file.Close(); err != nil {
		return errors.Wrap(err, "failed to close extract target file")
	}
	return nil
}
