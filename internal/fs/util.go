package fs

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/akeil/rmlines/internal/logging"
)

// WriteFile writes the output of fn to a temporary file and moves it to
// path when fn succeeds. If fn fails, path is not touched.
func WriteFile(path string, fn func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		// the target directory may not allow temp files
		tmp, err = ioutil.TempFile("", "rmlines-*")
		if err != nil {
			return err
		}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	err = fn(tmp)
	if err != nil {
		tmp.Close()
		return err
	}

	err = tmp.Close()
	if err != nil {
		return err
	}

	err = os.Chmod(tmpPath, 0644)
	if err != nil {
		return err
	}

	return Move(tmpPath, path)
}

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}

	// A bit untidy, but we carry on even if we fail to clean up behind us.
	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}
