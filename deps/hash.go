package deps

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/reusee/pylaunch/files"
)

// ManifestHash returns the lowercase hex SHA-256 of the file at path.
// exists is false, with a nil error, when there is no such file.
func ManifestHash(path string) (hash string, exists bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", true, err
	}
	return hex.EncodeToString(h.Sum(nil)), true, nil
}

// ReadStoredHash reads the sidecar written after the last successful install.
// An absent or unreadable sidecar yields ("", false); callers compare against the empty string.
func ReadStoredHash(path string) (hash string, ok bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(content)), true
}

// WriteStoredHash replaces the sidecar atomically.
func WriteStoredHash(path string, hash string) error {
	return files.WriteAtomic(path, []byte(hash+"\n"), 0644)
}
