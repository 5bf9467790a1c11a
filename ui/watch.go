package ui

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// WatchFile calls onChange with the new contents of path every time the file
// is written or replaced, until ctx is done. The parent directory is watched
// so that editors saving through a rename are noticed too.
func WatchFile(ctx context.Context, path string, logger zerolog.Logger, onChange func([]byte)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			contents, err := os.ReadFile(abs)
			if err != nil {
				logger.Warn().Err(err).Str("path", abs).Msg("reload failed")
				continue
			}
			logger.Debug().Str("path", abs).Int("bytes", len(contents)).Msg("file changed")
			onChange(contents)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}
