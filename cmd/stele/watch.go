package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceWindow absorbs editor write bursts before rechecking.
const debounceWindow = 200 * time.Millisecond

func watchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir|file.sl>...",
		Short: "Recheck statute sources whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			for _, path := range args {
				if err := watcher.Add(path); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			recheck := func(path string) {
				c, err := compile(cfg, path)
				if err != nil {
					color.Red("%v", err)
					return
				}
				c.report()
				if c.failed() {
					color.Red("%s: errors", path)
				} else {
					color.Green("%s: ok", path)
				}
			}

			// first pass over everything named on the command line
			for _, path := range args {
				if filepath.Ext(path) == sourceExt {
					recheck(path)
				}
			}

			pending := make(map[string]bool)
			var timer <-chan time.Time

			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					if filepath.Ext(event.Name) != sourceExt {
						continue
					}
					pending[event.Name] = true
					timer = time.After(debounceWindow)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					color.Red("watch error: %v", err)
				case <-timer:
					for path := range pending {
						recheck(path)
					}
					pending = make(map[string]bool)
					timer = nil
				}
			}
		},
	}
}

const sourceExt = ".sl"
