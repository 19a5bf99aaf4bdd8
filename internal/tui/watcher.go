package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"gitramble.dev/gitramble/internal/debounce"
	"gitramble.dev/gitramble/internal/output"
)

const autoRefreshDebounceDelay = 350 * time.Millisecond

// repoWatcher calls notify once the repository's git directory has been
// quiet for a moment after a change
type repoWatcher struct {
	watcher  *fsnotify.Watcher
	debounce *debounce.Debouncer
	log      *output.Splog
	done     chan struct{}
}

func startRepoWatcher(repoRoot string, log *output.Splog, notify func()) (*repoWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	for _, path := range watchPaths(repoRoot) {
		log.Debug("Watching %s", path)
		if err := watcher.Add(path); err != nil {
			err := errors.Join(err, watcher.Close())
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
	}

	w := &repoWatcher{
		watcher:  watcher,
		debounce: debounce.New(autoRefreshDebounceDelay, notify),
		log:      log,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *repoWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if shouldIgnoreWatchPath(ev.Name) {
				continue
			}
			w.log.Debug("fsnotify %s %s", ev.Op, ev.Name)
			w.debounce.Trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Debug("fsnotify error: %v", err)
		}
	}
}

// Close stops watching and drops any pending notification
func (w *repoWatcher) Close() error {
	w.debounce.Stop()
	err := w.watcher.Close()
	<-w.done
	return err
}

// watchPaths lists the directories whose changes move HEAD or a branch.
// fsnotify is not recursive, so the reflog and branch ref directories are
// added next to the git directory itself.
func watchPaths(root string) []string {
	if root == "" {
		return nil
	}
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		// Linked worktree or unusual layout: watch the root
		return []string{root}
	}

	paths := []string{gitDir}
	for _, sub := range []string{"logs", filepath.Join("refs", "heads")} {
		dir := filepath.Join(gitDir, sub)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			paths = append(paths, dir)
		}
	}
	return paths
}

func shouldIgnoreWatchPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".lock" || ext == ".ipc"
}
