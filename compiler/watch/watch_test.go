package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// start runs Run in the background and returns the run counter and a
// function that stops the watch and returns Run's error.
func start(t *testing.T, path string, fn func(context.Context) error) (*atomic.Int32, func() error) {
	t.Helper()
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, func(ctx context.Context) error {
			runs.Add(1)
			return fn(ctx)
		}, WithDelay(20*time.Millisecond), WithLogger(discard()))
	}()
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 5*time.Second, 5*time.Millisecond, "initial run")
	return &runs, func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			return errors.New("watch did not stop")
		}
	}
}

func TestRun(t *testing.T) {
	t.Run("reruns on change", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("package: a\n"), 0o644))

		runs, stop := start(t, path, func(context.Context) error { return nil })

		require.NoError(t, os.WriteFile(path, []byte("package: b\n"), 0o644))
		require.Eventually(t, func() bool { return runs.Load() == 2 }, 5*time.Second, 5*time.Millisecond)
		assert.NoError(t, stop())
	})

	t.Run("ignores other files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("package: a\n"), 0o644))

		runs, stop := start(t, path, func(context.Context) error { return nil })

		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(1), runs.Load())
		assert.NoError(t, stop())
	})

	t.Run("failures do not stop the watch", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("package: a\n"), 0o644))

		runs, stop := start(t, path, func(context.Context) error { return errors.New("invalid catalog") })

		require.NoError(t, os.WriteFile(path, []byte("package: b\n"), 0o644))
		require.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 5*time.Millisecond)
		assert.NoError(t, stop())
	})

	t.Run("missing directory", func(t *testing.T) {
		err := Run(context.Background(), filepath.Join(t.TempDir(), "missing", "catalog.yaml"),
			func(context.Context) error { return nil })
		assert.Error(t, err)
	})
}

func TestOptions(t *testing.T) {
	o := options{delay: DefaultDelay}
	WithDelay(0)(&o)
	assert.Equal(t, DefaultDelay, o.delay)
	WithDelay(time.Second)(&o)
	assert.Equal(t, time.Second, o.delay)

	WithLogger(nil)(&o)
	assert.Nil(t, o.logger)
	l := discard()
	WithLogger(l)(&o)
	assert.Same(t, l, o.logger)
}
