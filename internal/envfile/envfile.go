// Package envfile reads and updates KEY="VALUE" environment files in place.
package envfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var (
	ErrNotFound     = errors.New("environment file not found")
	ErrInvalidKey   = errors.New("invalid key")
	ErrInvalidValue = errors.New("invalid value")
)

var keyRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidKey reports whether key is usable as an environment variable name.
func ValidKey(key string) bool {
	return keyRegex.MatchString(key)
}

// Find resolves the environment file.
//
// A path with a directory component must exist as given. A bare file name is
// looked up in the working directory and then in each parent directory up to
// the filesystem root.
func Find(name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}

	if filepath.IsAbs(name) || filepath.Base(name) != name {
		if !isFile(name) {
			return "", errors.Wrap(ErrNotFound, name)
		}
		return filepath.Abs(name)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			slog.Debug("environment file found", "path", candidate)
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrap(ErrNotFound, name)
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Read parses the environment file into a map.
func Read(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrap(ErrNotFound, path)
		}
		return nil, errors.WithMessagef(err, "unable to parse %s", path)
	}
	return values, nil
}

// Lookup returns the value of key in the environment file.
func Lookup(path, key string) (string, bool, error) {
	values, err := Read(path)
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// SetValue sets key to value in the environment file at path.
// Matching lines are rewritten, otherwise a new line is appended. The rest of
// the file is left untouched. The file must already exist.
func SetValue(path, key, value string) error {
	if !ValidKey(key) {
		return errors.Wrap(ErrInvalidKey, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return errors.Wrap(ErrInvalidValue, "value contains a line break")
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrNotFound, path)
		}
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrNotFound, path)
		}
		return err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return err
	}

	content := string(data)
	updated, replaced := Replace(content, key, value)
	if updated == content {
		slog.Debug("environment file already up to date", "path", target, "key", key)
		return nil
	}

	slog.Debug("updating environment file", "path", target, "key", key, "replaced", replaced)
	return writeFile(target, []byte(updated), info.Mode().Perm())
}

// writeFile replaces path atomically by renaming a temporary file over it.
func writeFile(path string, data []byte, perm os.FileMode) error {
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return errors.WithMessage(err, "unable to write temporary file")
	}

	// os.WriteFile applies the umask; restore the original permissions.
	if err := os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.WithMessage(err, "unable to replace environment file")
	}

	return nil
}
