package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string
	At   time.Time
}

func TestSerialize(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "1721235060000000000")
	in := record{Name: "UAL123", At: time.Date(2024, 7, 17, 16, 51, 0, 0, time.UTC)}

	require.NoError(t, Serialize(p, &in))
	assert.True(t, Exists(p))

	var out record
	require.NoError(t, Unserialize(p, &out))
	assert.Equal(t, in.Name, out.Name)
	assert.True(t, in.At.Equal(out.At))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file is left behind")
}

func TestWriteAtomically(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "frame.png")
	require.NoError(t, WriteAtomically(p, bytes.NewReader([]byte("first"))))
	require.NoError(t, WriteAtomically(p, bytes.NewReader([]byte("second"))))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
}

func TestIsTemp(t *testing.T) {
	assert.True(t, IsTemp(".1721235060000000000.123"))
	assert.False(t, IsTemp("1721235060000000000"))
	assert.False(t, IsTemp(""))
}
