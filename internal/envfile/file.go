// filepath: internal/envfile/file.go
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"envkeygen/internal/shared"

	"github.com/joho/godotenv"
)

// DefaultPath is the env file location, relative to the working directory.
const DefaultPath = ".env"

// FileMode is applied to the written env file; it holds a credential.
const FileMode os.FileMode = 0600

// Exists reports whether path is present. Errors other than "not exist"
// (e.g. a permission problem on the directory) are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", shared.ErrStatFile, err)
}

// Write replaces path with content in one step. The content goes to a temp
// file in the same directory which is then renamed over path, so a reader
// sees either the old file or the complete new one. On failure path is left
// as it was.
func Write(path string, content string) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFile, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFile, err)
	}
	if err = tmp.Chmod(FileMode); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFile, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFile, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFile, err)
	}
	return nil
}

// Verify parses path as a dotenv file and checks that the key variable
// holds secret.
func Verify(path string, secret string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrVerifyFailed, err)
	}
	got, ok := values[KeyVariable]
	if !ok {
		return fmt.Errorf("%w: %s not set", shared.ErrVerifyFailed, KeyVariable)
	}
	if got != secret {
		return fmt.Errorf("%w: %s mismatch", shared.ErrVerifyFailed, KeyVariable)
	}
	return nil
}
