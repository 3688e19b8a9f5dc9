package fileutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")

	require.NoError(t, WriteFileLocked(path, []byte("<root />\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<root />\n", string(data))
}

func TestWriteFileLockedOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")

	require.NoError(t, WriteFileLocked(path, []byte("first")))
	require.NoError(t, WriteFileLocked(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFileLockedCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.xml")

	require.NoError(t, WriteFileLocked(path, []byte("data")))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteFileLockedLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xml")

	require.NoError(t, WriteFileLocked(path, []byte("data")))

	matches, err := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWriteFileLockedConcurrentWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, WriteFileLocked(path, []byte("payload")))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data), "no interleaved or partial writes")
}
