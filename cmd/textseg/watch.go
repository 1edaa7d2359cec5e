package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sprifti/textkit/segment"
)

func newWatchCmd(a *app) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "watch [--kind KIND] file",
		Short: "Re-segment a response file every time it is written",
		Long: `watch prints the segmented record once at start and again after each
write to the file. Without --kind the file is treated as a combined response.
Stops on interrupt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			render := func(text string) any { return analyzeView(a.segmenter, text) }
			if kindName != "" {
				kind, err := segment.ParseKind(kindName)
				if err != nil {
					return err
				}
				render = func(text string) any { return newRecordView(a.segmenter.Segment(kind, text)) }
			}

			return watchFile(cmd.Context(), args[0], a.logger, func(text string) error {
				return a.write(cmd.OutOrStdout(), render(text))
			})
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "response kind: grammar, tone or rewrite")

	return cmd
}

// watchFile calls fn with the file's content once, then after every write
// or re-creation of the file, until ctx is cancelled. Read errors while the
// file is being replaced are logged and skipped; an error from fn stops
// the watch.
func watchFile(ctx context.Context, path string, logger *slog.Logger, fn func(text string) error) error {
	emit := func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("read watched file", slog.String("path", path), slog.Any("error", err))
			return nil
		}
		return fn(string(data))
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory (more reliable than watching file directly)
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if err := emit(); err != nil {
		return err
	}

	baseName := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("watched file changed", slog.String("path", path), slog.String("op", event.Op.String()))
			if err := emit(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.Any("error", err))
		}
	}
}
