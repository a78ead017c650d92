package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.a68")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0o644))

	w, err := New(Config{FilePath: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("after"), 0o644))

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after writing the watched file")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.a68")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := New(Config{FilePath: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.a68"), []byte("y"), 0o644))

	select {
	case <-ch:
		t.Fatal("got a signal for a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.a68")
	require.NoError(t, os.WriteFile(path, []byte("0"), 0o644))

	w, err := New(Config{FilePath: path, DebounceDur: 100 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ch, err := w.Start()
	require.NoError(t, err)

	// A burst of writes inside the debounce window collapses to one signal.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after burst")
	}

	select {
	case <-ch:
		t.Fatal("burst produced more than one signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_RenameOverCountsAsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.a68")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := New(Config{FilePath: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	ch, err := w.Start()
	require.NoError(t, err)

	// Editors save by writing a temp file and renaming it over the target.
	tmp := filepath.Join(dir, ".watched.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("y"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after rename-over save")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/tmp/file.a68")
	require.Equal(t, "/tmp/file.a68", cfg.FilePath)
	require.Equal(t, 300*time.Millisecond, cfg.DebounceDur)
}

func TestWatcher_StopIsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.a68")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := New(Config{FilePath: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}
