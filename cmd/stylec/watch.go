package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/recera/stylecollector/cmd/stylec/internal/ui"
	"github.com/recera/stylecollector/internal/logging"
)

func newWatchCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "watch [manifest]",
		Short: "Re-inspect the manifest whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			p := ui.Printer{Format: a.cfg.Output.Format, Color: a.cfg.Output.Color}
			if format != "" {
				p.Format = format
			}

			w := &manifestWatcher{
				path:     a.manifestPath(args),
				debounce: a.cfg.Watch.Debounce,
				reload: func(path string) error {
					return a.print(cmd.OutOrStdout(), p, path)
				},
				log: logging.For("watch"),
			}
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or yaml (overrides config)")

	return cmd
}

func (a *app) print(out io.Writer, p ui.Printer, path string) error {
	reg, err := a.collect(path)
	if err != nil {
		return err
	}
	return p.Print(out, reg.Summaries())
}

// manifestWatcher calls reload once at start and again after every burst of
// writes to the manifest file
type manifestWatcher struct {
	path     string
	debounce time.Duration
	reload   func(path string) error
	log      *logrus.Entry

	// ready is closed once the file watch is installed
	ready chan struct{}
}

// Run blocks until ctx is done or the watcher fails
func (w *manifestWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	if w.ready != nil {
		close(w.ready)
	}

	w.fire()

	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.log.WithField("op", event.Op.String()).Debug("manifest changed")
			debounce.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watcher error")

		case <-debounce.C:
			w.fire()
		}
	}
}

func (w *manifestWatcher) fire() {
	start := time.Now()
	if err := w.reload(w.path); err != nil {
		// Keep watching; the next save may fix it
		w.log.WithError(err).Error("reload failed")
		return
	}
	w.log.WithField("took", time.Since(start)).Info("reloaded")
}
