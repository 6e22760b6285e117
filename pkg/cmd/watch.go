package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlpretty/pkg/config"
	"github.com/pseudomuto/sqlpretty/pkg/consts"
	"github.com/pseudomuto/sqlpretty/pkg/format"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/zeebo/xxh3"
)

// sqlWatcher reformats SQL files in place as they change.
//
// Every write it performs is fingerprinted so the change event it causes is
// recognized and skipped instead of formatting the file a second time.
type sqlWatcher struct {
	fs   afero.Fs
	cfg  *config.Config
	fmtr *format.Formatter

	dirs    map[string]bool
	files   map[string]bool
	written map[string]uint64
}

func newSQLWatcher(fs afero.Fs, cfg *config.Config, fmtr *format.Formatter) *sqlWatcher {
	return &sqlWatcher{
		fs:      fs,
		cfg:     cfg,
		fmtr:    fmtr,
		dirs:    make(map[string]bool),
		files:   make(map[string]bool),
		written: make(map[string]uint64),
	}
}

// watchCmd creates a CLI command that keeps files formatted while they are
// being edited.
//
// Directories are watched recursively (including directories created later)
// for files with a configured extension. Files named explicitly are watched
// regardless of their extension. The command runs until interrupted.
//
// Examples:
//
//	sqlpretty watch models/
//	sqlpretty watch query.sql
func watchCmd(cfg *config.Config, fmtr *format.Formatter, fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Format SQL files whenever they change",
		ArgsUsage: "[path ...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{"."}
			}

			fsw, err := fsnotify.NewWatcher()
			if err != nil {
				return errors.Wrap(err, "failed to create file watcher")
			}
			defer func() { _ = fsw.Close() }()

			w := newSQLWatcher(fs, cfg, fmtr)
			if err := w.add(fsw, paths...); err != nil {
				return err
			}

			slog.Info("Watching for changes", "paths", paths)
			return w.run(ctx, fsw)
		},
	}
}

// add registers paths with fsw. Directories are added along with all of their
// subdirectories; files are watched through their parent directory.
func (w *sqlWatcher) add(fsw *fsnotify.Watcher, paths ...string) error {
	for _, path := range paths {
		if path == consts.StdinPath {
			return errors.New("cannot watch stdin")
		}

		path = filepath.Clean(path)

		info, err := w.fs.Stat(path)
		if err != nil {
			return errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			w.files[path] = true
			if err := fsw.Add(filepath.Dir(path)); err != nil {
				return errors.Wrapf(err, "failed to watch path: %s", path)
			}

			continue
		}

		err = afero.Walk(w.fs, path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() {
				return nil
			}

			w.dirs[p] = true
			return fsw.Add(p)
		})
		if err != nil {
			return errors.Wrapf(err, "failed to watch directory: %s", path)
		}
	}

	return nil
}

// run consumes watcher events until ctx is done or the watcher is closed.
// Failures on individual files are logged and do not stop the loop.
func (w *sqlWatcher) run(ctx context.Context, fsw *fsnotify.Watcher) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			w.handleEvent(fsw, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			slog.Error("File watcher error", "err", err)
		}
	}
}

func (w *sqlWatcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	path := filepath.Clean(event.Name)

	if event.Has(fsnotify.Create) && w.dirs[filepath.Dir(path)] {
		if info, err := w.fs.Stat(path); err == nil && info.IsDir() {
			if err := w.add(fsw, path); err != nil {
				slog.Error("Failed to watch new directory", "path", path, "err", err)
			}

			return
		}
	}

	if !w.relevant(path) {
		return
	}

	if _, err := w.format(path); err != nil {
		slog.Error("Failed to format file", "path", path, "err", err)
	}
}

func (w *sqlWatcher) relevant(path string) bool {
	if w.files[path] {
		return true
	}

	return w.dirs[filepath.Dir(path)] && w.cfg.Matches(path)
}

// format rewrites path when its formatting differs, reporting whether the
// file was written. Content matching the last write to path is skipped.
func (w *sqlWatcher) format(path string) (bool, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read file: %s", path)
	}

	sum := xxh3.Hash(data)
	if last, ok := w.written[path]; ok && last == sum {
		slog.Debug("Skipping own write", "path", path)
		return false, nil
	}

	source, err := readSource(bytes.NewReader(data))
	if err != nil {
		return false, errors.Wrapf(err, "failed to decode file: %s", path)
	}

	// Compared against the decoded text, like fmt, so a byte order mark
	// alone never triggers a rewrite.
	output := renderFile(w.fmtr.Format(source).Text)
	if output == source {
		return false, nil
	}

	if err := afero.WriteFile(w.fs, path, []byte(output), consts.ModeFile); err != nil {
		return false, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
	}

	w.written[path] = xxh3.HashString(output)
	slog.Info("Formatted file", "path", path)
	return true, nil
}
