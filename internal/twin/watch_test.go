package twin

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"co2-twin/internal/core"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfigReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "twin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  wind: north\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	log, hook := test.NewNullLogger()
	w, err := WatchConfig(ctx, path, 20*time.Millisecond, log)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	// An invalid revision is skipped.
	require.NoError(t, os.WriteFile(path, []byte("dispersion:\n  decay_factor: 3\n"), 0o644))
	require.Eventually(t, func() bool {
		for _, e := range hook.AllEntries() {
			if e.Message == "keeping previous config" {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("layout:\n  wind: east\n"), 0o644))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Layout.Wind == core.East {
				return
			}
		case <-timeout:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatchConfigStopsWithContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	log, _ := test.NewNullLogger()
	w, err := WatchConfig(ctx, path, 0, log)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-w.Updates():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	_, err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "nope", "twin.yaml"), 0, nil)
	assert.Error(t, err)
}
