package am

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	_, user, _ := isolate(t)
	write(t, user, "[display]\nprecision = 1\n")

	script := filepath.Join(t.TempDir(), "calc.uv")
	write(t, script, "1 2 +\n")

	w, err := NewWatcher(script)
	require.NoError(t, err)
	w.SetDebounce(50 * time.Millisecond)

	reloads := make(chan *Config, 4)
	w.OnReload(func(cfg *Config) error {
		reloads <- cfg
		return nil
	})
	w.Start()
	defer w.Stop()

	t.Run("script change", func(t *testing.T) {
		write(t, script, "1 3 +\n")
		select {
		case cfg := <-reloads:
			assert.Equal(t, 1, cfg.Display.Precision)
		case <-time.After(5 * time.Second):
			t.Fatal("no reload after script change")
		}
	})

	t.Run("config change is picked up", func(t *testing.T) {
		write(t, user, "[display]\nprecision = 8\n")
		select {
		case cfg := <-reloads:
			assert.Equal(t, 8, cfg.Display.Precision)
		case <-time.After(5 * time.Second):
			t.Fatal("no reload after config change")
		}
	})
}

func TestWatcherUnrelatedFiles(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	script := filepath.Join(dir, "calc.uv")
	write(t, script, "1\n")

	w, err := NewWatcher(script)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	reloads := make(chan struct{}, 1)
	w.OnReload(func(*Config) error {
		reloads <- struct{}{}
		return nil
	})
	w.Start()
	defer w.Stop()

	write(t, filepath.Join(dir, "other.txt"), "x")
	write(t, script+".back1", "x")
	select {
	case <-reloads:
		t.Fatal("reloaded for an unwatched file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopWaitsForReload(t *testing.T) {
	isolate(t)
	script := filepath.Join(t.TempDir(), "calc.uv")
	write(t, script, "1\n")

	w, err := NewWatcher(script)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	var calls atomic.Int32
	entered := make(chan struct{}, 16)
	release := make(chan struct{})
	w.OnReload(func(*Config) error {
		calls.Add(1)
		entered <- struct{}{}
		<-release
		return nil
	})
	w.Start()

	write(t, script, "2\n")
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after script change")
	}

	stopped := make(chan error, 1)
	go func() { stopped <- w.Stop() }()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a reload was running")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after the reload finished")
	}

	n := calls.Load()
	write(t, script, "3\n")
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, n, calls.Load(), "no reload after Stop")
}

func TestWatcherStopWithoutStart(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "calc.uv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
}

func TestOwnWriteFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "calc.uv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	assert.False(t, w.checkOwnWrite())
	w.MarkOwnWrite()
	assert.True(t, w.checkOwnWrite())
	assert.False(t, w.checkOwnWrite(), "flag is cleared once seen")
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/x/am.toml.back1"))
	assert.True(t, isBackupFile("am.toml.back3"))
	assert.False(t, isBackupFile("am.toml"))
	assert.False(t, isBackupFile("notes.backup"))
}
