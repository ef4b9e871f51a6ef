// Package fileio reads and writes the files backing an editing session.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultPerm os.FileMode = 0o644

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// Load returns the whole file as text.
func Load(path string) (string, error) {
	filePath, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}
	return string(content), nil
}

// Save replaces the file's contents. The text is written to a temporary file
// in the same directory and renamed over the target, so readers see either
// the old or the new contents. An existing file keeps its permissions, and a
// symlink is followed so the link itself survives the save.
func Save(path, content string) (err error) {
	filePath, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if resolved, evalErr := filepath.EvalSymlinks(filePath); evalErr == nil {
		filePath = resolved
	}

	perm := defaultPerm
	if info, statErr := os.Stat(filePath); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	if err = os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}
