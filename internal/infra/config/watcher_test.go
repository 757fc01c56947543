package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "logLevel: warn\n")
	changes := make(chan domain.Config, 4)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	watcher := NewWatcher(NewLoader(nil), path, WatcherOptions{
		Debounce: 20 * time.Millisecond,
		OnChange: func(cfg domain.Config) { changes <- cfg },
	})
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o600))

	select {
	case cfg := <-changes:
		require.Equal(t, "debug", cfg.LogLevel)
	case <-time.After(3 * time.Second):
		t.Fatal("config change was not observed")
	}
}

func TestWatcherSkipsInvalidEdits(t *testing.T) {
	path := writeConfig(t, "logLevel: warn\n")
	changes := make(chan domain.Config, 4)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	watcher := NewWatcher(NewLoader(nil), path, WatcherOptions{
		Debounce: 20 * time.Millisecond,
		OnChange: func(cfg domain.Config) { changes <- cfg },
	})
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte("logLevel: loud\n"), 0o600))
	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload with %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStartFailsForMissingDirectory(t *testing.T) {
	watcher := NewWatcher(NewLoader(nil), "/definitely/missing/dir/toolbox.yaml", WatcherOptions{})
	require.Error(t, watcher.Start(context.Background()))
}
