package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/movdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load binary file", func(t *testing.T) {
		data := []byte{0x89, 0xd9, 0xb1, 0x0c}
		tmpFile := createTempFile(t, data)

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		loaded, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, data, loaded)
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		loaded, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Len(t, loaded, 0)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.bin"},
		}

		_, err := loader.Load(opts)
		assert.ErrorContains(t, err, "reading file /nonexistent/file.bin")
	})

	t.Run("load from stdin pipe", func(t *testing.T) {
		data := []byte{0x8b, 0x41, 0xdb}

		r, w, err := os.Pipe()
		assert.NoError(t, err)
		defer func() { _ = r.Close() }()

		_, err = w.Write(data)
		assert.NoError(t, err)
		assert.NoError(t, w.Close())

		loader := &Loader{stdin: r}
		opts := options.Program{
			Parameters: options.Parameters{Input: StdinInput},
		}

		loaded, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, data, loaded)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.bin")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
