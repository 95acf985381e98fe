package twconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_InvokesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tailwind.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content: []\n"), 0644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func() { calls <- struct{}{} })
	}()

	// First invocation happens immediately
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("initial invocation never happened")
	}

	require.NoError(t, os.WriteFile(path, []byte("content: [\"./a.html\"]\n"), 0644))

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("change was not observed")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/dir/config.yaml", func() {})
	assert.Error(t, err)
}
