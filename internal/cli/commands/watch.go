package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kisstest/internal/discovery"
	"kisstest/internal/domain"
)

// DefaultDebounce batches rapid saves into one run
const DefaultDebounce = 300 * time.Millisecond

// WatchCommand reruns the suite whenever a test file changes
type WatchCommand struct {
	env      *Env
	debounce time.Duration
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(env *Env) *WatchCommand {
	return &WatchCommand{env: env, debounce: DefaultDebounce}
}

// Execute runs the command until the command context is cancelled
func (wc *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	return wc.Watch(cmd.Context())
}

// Watch runs the suite once, then again after each debounced change to a test file.
// Events and runs are handled on the calling goroutine.
func (wc *WatchCommand) Watch(ctx context.Context) error {
	dir := wc.env.Config.GetTestPath()
	log := wc.env.Log.Named("watch").With(zap.String("dir", dir))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidDirectory, dir, err)
	}
	log.Info("Watching for changes")

	wc.runOnce(log)

	timer := time.NewTimer(wc.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if wc.relevant(event) {
				log.Debug("Test file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
				timer.Reset(wc.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			wc.runOnce(log)
		}
	}
}

func (wc *WatchCommand) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	pattern := discovery.NewScanner(wc.env.Config.FileFilter).Pattern()
	matched, err := filepath.Match(pattern, filepath.Base(event.Name))
	return err == nil && matched
}

// runOnce builds a fresh suite so counters start at zero on every change
func (wc *WatchCommand) runOnce(log *zap.Logger) {
	out := wc.env.Out
	s, err := wc.env.NewSuite()
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "Error: %v\n", err)
		return
	}

	found, err := s.AssembleFromDirectory(wc.env.Config.GetTestPath())
	if err != nil {
		log.Warn("Assembly failed", zap.Error(err))
		color.New(color.FgRed).Fprintf(out, "Error: %v\n", err)
		return
	}
	if !found {
		color.New(color.FgYellow).Fprintln(out, "No tests to execute")
		return
	}

	s.Run()
	s.PrintCurrentResults()
}
