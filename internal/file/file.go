package file

import (
	"encoding/gob"
	"io"
	"os"
	"path/filepath"
)

// Serialize gob encodes data into path, replacing it atomically.
func Serialize(path string, data interface{}) error {
	tf, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	err = gob.NewEncoder(tf).Encode(data)
	if err == nil {
		err = tf.Sync()
	}
	_ = tf.Close()
	if err != nil {
		_ = os.Remove(tf.Name())
		return err
	}

	return os.Rename(tf.Name(), path)
}

func Unserialize(path string, data interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewDecoder(f).Decode(data)
}

// WriteAtomically copies r into dest, readers of dest never see a partial file.
func WriteAtomically(dest string, r io.Reader) error {
	tf, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return err
	}

	_, err = io.Copy(tf, r)
	if err == nil {
		err = tf.Sync()
	}
	_ = tf.Close()
	if err != nil {
		_ = os.Remove(tf.Name())
		return err
	}

	return os.Rename(tf.Name(), dest)
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsTemp reports the leftovers of an interrupted Serialize or WriteAtomically.
func IsTemp(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
